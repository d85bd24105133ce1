package domain

import "time"

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type TaskCategory string

const (
	CategoryBar            TaskCategory = "bar"
	CategoryCanteen        TaskCategory = "canteen"
	CategoryMaintenance    TaskCategory = "maintenance"
	CategoryEvents         TaskCategory = "events"
	CategoryCoaching       TaskCategory = "coaching"
	CategoryAdministration TaskCategory = "administration"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type TransactionType string

const (
	TransactionEarned     TransactionType = "earned"
	TransactionSpent      TransactionType = "spent"
	TransactionAdjustment TransactionType = "adjustment"
)

type ShopItemCategory string

const (
	ShopMembership ShopItemCategory = "membership"
	ShopCanteen    ShopItemCategory = "canteen"
	ShopFacility   ShopItemCategory = "facility"
	ShopTraining   ShopItemCategory = "training"
	ShopActivity   ShopItemCategory = "activity"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

type Recurrence string

const (
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceNone     Recurrence = "none"
)

type NotificationType string

const (
	NotificationTask   NotificationType = "task"
	NotificationCredit NotificationType = "credit"
	NotificationShop   NotificationType = "shop"
	NotificationSystem NotificationType = "system"
)

// Profile is the identity shared by every kind of user.
type Profile struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	FirstName  string `json:"firstName" yaml:"firstName" validate:"required"`
	LastName   string `json:"lastName" yaml:"lastName" validate:"required"`
	Email      string `json:"email" yaml:"email" validate:"required,email"`
	Phone      string `json:"phone" yaml:"phone"`
	AvatarURL  string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	JoinedDate string `json:"joinedDate" yaml:"joinedDate" validate:"datetime=2006-01-02"`
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// User is implemented by Volunteer and Admin only; Role is the discriminator.
type User interface {
	Identity() Profile
	Role() Role
	isUser()
}

type Volunteer struct {
	Profile        `yaml:",inline"`
	CreditBalance  int `json:"creditBalance" yaml:"creditBalance"`
	TotalEarned    int `json:"totalEarned" yaml:"totalEarned" validate:"gte=0"`
	TotalSpent     int `json:"totalSpent" yaml:"totalSpent" validate:"gte=0"`
	TasksCompleted int `json:"tasksCompleted" yaml:"tasksCompleted" validate:"gte=0"`
}

func (v Volunteer) Identity() Profile { return v.Profile }
func (Volunteer) Role() Role          { return RoleVolunteer }
func (Volunteer) isUser()             {}

type Admin struct {
	Profile `yaml:",inline"`
}

func (a Admin) Identity() Profile { return a.Profile }
func (Admin) Role() Role          { return RoleAdmin }
func (Admin) isUser()             {}

type Task struct {
	ID                   string       `json:"id" yaml:"id" validate:"required"`
	Title                string       `json:"title" yaml:"title" validate:"required"`
	Description          string       `json:"description" yaml:"description"`
	Category             TaskCategory `json:"category" yaml:"category" validate:"oneof=bar canteen maintenance events coaching administration"`
	CreditReward         int          `json:"creditReward" yaml:"creditReward" validate:"gte=0"`
	Date                 string       `json:"date" yaml:"date" validate:"datetime=2006-01-02"`
	StartTime            string       `json:"startTime" yaml:"startTime" validate:"datetime=15:04"`
	EndTime              string       `json:"endTime" yaml:"endTime" validate:"datetime=15:04"`
	Location             string       `json:"location" yaml:"location"`
	Status               TaskStatus   `json:"status" yaml:"status" validate:"oneof=open in_progress completed cancelled"`
	MaxVolunteers        int          `json:"maxVolunteers" yaml:"maxVolunteers" validate:"gte=1"`
	AssignedVolunteerIDs []string     `json:"assignedVolunteerIds" yaml:"assignedVolunteerIds"`
	WaitlistVolunteerIDs []string     `json:"waitlistVolunteerIds" yaml:"waitlistVolunteerIds"`
	TemplateID           string       `json:"templateId,omitempty" yaml:"templateId,omitempty"`
}

func (t Task) IsFull() bool {
	return len(t.AssignedVolunteerIDs) >= t.MaxVolunteers
}

type Transaction struct {
	ID          string          `json:"id" yaml:"id" validate:"required"`
	UserID      string          `json:"userId" yaml:"userId" validate:"required"`
	Type        TransactionType `json:"type" yaml:"type" validate:"oneof=earned spent adjustment"`
	Amount      int             `json:"amount" yaml:"amount" validate:"gte=0"`
	Description string          `json:"description" yaml:"description"`
	Date        string          `json:"date" yaml:"date" validate:"datetime=2006-01-02"`
	RelatedID   string          `json:"relatedId,omitempty" yaml:"relatedId,omitempty"`
}

type ShopItem struct {
	ID          string           `json:"id" yaml:"id" validate:"required"`
	Name        string           `json:"name" yaml:"name" validate:"required"`
	Description string           `json:"description" yaml:"description"`
	Category    ShopItemCategory `json:"category" yaml:"category" validate:"oneof=membership canteen facility training activity"`
	CreditCost  int              `json:"creditCost" yaml:"creditCost" validate:"gte=0"`
	ImageURL    string           `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	IsAvailable bool             `json:"isAvailable" yaml:"isAvailable"`
}

type TaskTemplate struct {
	ID            string       `json:"id" yaml:"id" validate:"required"`
	Title         string       `json:"title" yaml:"title" validate:"required"`
	Description   string       `json:"description" yaml:"description"`
	Category      TaskCategory `json:"category" yaml:"category" validate:"oneof=bar canteen maintenance events coaching administration"`
	CreditReward  int          `json:"creditReward" yaml:"creditReward" validate:"gte=0"`
	StartTime     string       `json:"startTime" yaml:"startTime" validate:"datetime=15:04"`
	EndTime       string       `json:"endTime" yaml:"endTime" validate:"datetime=15:04"`
	Location      string       `json:"location" yaml:"location"`
	MaxVolunteers int          `json:"maxVolunteers" yaml:"maxVolunteers" validate:"gte=1"`
	Recurrence    Recurrence   `json:"recurrence" yaml:"recurrence" validate:"oneof=weekly biweekly monthly none"`
}

type Availability struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	VolunteerID string   `json:"volunteerId" yaml:"volunteerId" validate:"required"`
	DayOfWeek   int      `json:"dayOfWeek" yaml:"dayOfWeek" validate:"gte=0,lte=6"`
	TimeSlot    TimeSlot `json:"timeSlot" yaml:"timeSlot" validate:"oneof=morning afternoon evening"`
}

type Announcement struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	AuthorID string `json:"authorId" yaml:"authorId" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Content  string `json:"content" yaml:"content"`
	Date     string `json:"date" yaml:"date" validate:"datetime=2006-01-02"`
	IsPinned bool   `json:"isPinned" yaml:"isPinned"`
}

type Notification struct {
	ID        string           `json:"id" yaml:"id" validate:"required"`
	UserID    string           `json:"userId" yaml:"userId" validate:"required"`
	Title     string           `json:"title" yaml:"title"`
	Message   string           `json:"message" yaml:"message"`
	Read      bool             `json:"read" yaml:"read"`
	CreatedAt time.Time        `json:"createdAt" yaml:"createdAt"`
	Type      NotificationType `json:"type" yaml:"type" validate:"oneof=task credit shop system"`
}

type ClubStats struct {
	TotalMembers       int `json:"totalMembers" yaml:"totalMembers"`
	ActiveVolunteers   int `json:"activeVolunteers" yaml:"activeVolunteers"`
	TotalCreditsIssued int `json:"totalCreditsIssued" yaml:"totalCreditsIssued"`
	TotalCreditsSpent  int `json:"totalCreditsSpent" yaml:"totalCreditsSpent"`
	TasksCompleted     int `json:"tasksCompleted" yaml:"tasksCompleted"`
	TasksOpen          int `json:"tasksOpen" yaml:"tasksOpen"`
}

type Club struct {
	ID                string    `json:"id" yaml:"id" validate:"required"`
	Name              string    `json:"name" yaml:"name" validate:"required"`
	SportType         string    `json:"sportType" yaml:"sportType"`
	CreditName        string    `json:"creditName" yaml:"creditName" validate:"required"`
	CreditSymbol      string    `json:"creditSymbol" yaml:"creditSymbol" validate:"required"`
	CreditToEuroRatio float64   `json:"creditToEuroRatio" yaml:"creditToEuroRatio" validate:"gte=0"`
	Stats             ClubStats `json:"stats" yaml:"stats"`
}

// Voucher is the pickup code handed out for a redeemed shop item.
type Voucher struct {
	Code          string `json:"code"`
	TransactionID string `json:"transactionId"`
	ItemID        string `json:"itemId"`
	UserID        string `json:"userId"`
}

type Fairness string

const (
	FairnessNA      Fairness = "n/a"
	FairnessActive  Fairness = "active"
	FairnessAverage Fairness = "average"
	FairnessBelow   Fairness = "below_average"
)
