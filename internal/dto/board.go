package dto

type AnnouncementRequestDTO struct {
	Title    string `json:"title" validate:"required" example:"Clubhouse closed Monday"`
	Content  string `json:"content" example:"Maintenance on the heating."`
	IsPinned bool   `json:"isPinned"`
}

type ClubRequestDTO struct {
	Name              string  `json:"name" validate:"required" example:"SV Oranje"`
	SportType         string  `json:"sportType" example:"Tennis"`
	CreditName        string  `json:"creditName" validate:"required" example:"Credits"`
	CreditSymbol      string  `json:"creditSymbol" validate:"required" example:"CR"`
	CreditToEuroRatio float64 `json:"creditToEuroRatio" validate:"gte=0" example:"0.5"`
}
