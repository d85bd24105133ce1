package store

import (
	"github.com/GlebRadaev/clubcredits/internal/domain"
)

// CompleteTask marks the task completed and pays its reward to every assigned
// volunteer: one earned transaction each, plus balance, total earned and task
// count bumps. Calling it again on a completed task pays again.
func (s *Store) CompleteTask(taskID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return nil, ErrTaskNotFound
	}
	return s.complete(&s.tasks[i]), nil
}

// CompleteOpenTask pays out only tasks that are neither completed nor
// cancelled. The status check and the payout happen under one lock, so a task
// is paid at most once.
func (s *Store) CompleteOpenTask(taskID string) (domain.Task, []domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, nil, ErrTaskNotFound
	}
	t := &s.tasks[i]
	if closed(*t) {
		return t.Clone(), nil, ErrTaskClosed
	}
	payouts := s.complete(t)
	return t.Clone(), payouts, nil
}

func (s *Store) complete(t *domain.Task) []domain.Transaction {
	date := s.today()

	payouts := make([]domain.Transaction, 0, len(t.AssignedVolunteerIDs))
	for _, vid := range t.AssignedVolunteerIDs {
		payouts = append(payouts, domain.Transaction{
			ID:          s.newID("tx"),
			UserID:      vid,
			Type:        domain.TransactionEarned,
			Amount:      t.CreditReward,
			Description: t.Title,
			Date:        date,
			RelatedID:   t.ID,
		})
		if vi := s.volunteerIndex(vid); vi >= 0 {
			v := &s.volunteers[vi]
			v.CreditBalance += t.CreditReward
			v.TotalEarned += t.CreditReward
			v.TasksCompleted++
		}
	}

	s.transactions = append(append([]domain.Transaction{}, payouts...), s.transactions...)
	t.Status = domain.TaskCompleted
	return payouts
}

// RedeemShopItem books the item's cost against the user. Availability and
// balance are not checked here; the balance may go negative.
func (s *Store) RedeemShopItem(itemID, userID string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.shopItem(itemID)
	if item == nil {
		return domain.Transaction{}, ErrItemNotFound
	}
	return s.redeem(item, userID), nil
}

// RedeemIfAffordable books the redemption only when the item is available and
// the volunteer's balance covers its cost, both read under the booking lock.
func (s *Store) RedeemIfAffordable(itemID, userID string) (domain.ShopItem, domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.shopItem(itemID)
	if item == nil {
		return domain.ShopItem{}, domain.Transaction{}, ErrItemNotFound
	}
	if !item.IsAvailable {
		return *item, domain.Transaction{}, ErrItemUnavailable
	}
	vi := s.volunteerIndex(userID)
	if vi < 0 {
		return *item, domain.Transaction{}, ErrVolunteerNotFound
	}
	if s.volunteers[vi].CreditBalance < item.CreditCost {
		return *item, domain.Transaction{}, ErrInsufficientCredits
	}
	return *item, s.redeem(item, userID), nil
}

func (s *Store) shopItem(id string) *domain.ShopItem {
	for i := range s.shopItems {
		if s.shopItems[i].ID == id {
			return &s.shopItems[i]
		}
	}
	return nil
}

func (s *Store) redeem(item *domain.ShopItem, userID string) domain.Transaction {
	tx := domain.Transaction{
		ID:          s.newID("tx"),
		UserID:      userID,
		Type:        domain.TransactionSpent,
		Amount:      item.CreditCost,
		Description: item.Name,
		Date:        s.today(),
		RelatedID:   item.ID,
	}
	s.transactions = append([]domain.Transaction{tx}, s.transactions...)

	if vi := s.volunteerIndex(userID); vi >= 0 {
		v := &s.volunteers[vi]
		v.CreditBalance -= item.CreditCost
		v.TotalSpent += item.CreditCost
	}
	return tx
}

// AdjustCredits books a manual correction. Positive amounts are adjustments
// counted as earned, negative ones are spent; the balance moves by the signed
// amount with no floor.
func (s *Store) AdjustCredits(volunteerID string, amount int, description string) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := domain.Transaction{
		ID:          s.newID("tx"),
		UserID:      volunteerID,
		Type:        domain.TransactionAdjustment,
		Amount:      amount,
		Description: description,
		Date:        s.today(),
	}
	if amount < 0 {
		tx.Type = domain.TransactionSpent
		tx.Amount = -amount
	}
	s.transactions = append([]domain.Transaction{tx}, s.transactions...)

	if vi := s.volunteerIndex(volunteerID); vi >= 0 {
		v := &s.volunteers[vi]
		v.CreditBalance += amount
		if amount >= 0 {
			v.TotalEarned += amount
		} else {
			v.TotalSpent += -amount
		}
	}
	return tx
}

func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Transaction{}, s.transactions...)
}

func (s *Store) UserTransactions(userID string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Store) ShopItems() []domain.ShopItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ShopItem{}, s.shopItems...)
}

func (s *Store) ShopItem(id string) (domain.ShopItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item := s.shopItem(id); item != nil {
		return *item, nil
	}
	return domain.ShopItem{}, ErrItemNotFound
}

func (s *Store) Volunteers() []domain.Volunteer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Volunteer{}, s.volunteers...)
}

func (s *Store) Volunteer(id string) (domain.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.volunteerIndex(id); i >= 0 {
		return s.volunteers[i], nil
	}
	return domain.Volunteer{}, ErrVolunteerNotFound
}

func (s *Store) Admins() []domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Admin{}, s.admins...)
}

// User resolves any seeded identity, volunteer or admin.
func (s *Store) User(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.volunteerIndex(id); i >= 0 {
		return s.volunteers[i], nil
	}
	for _, a := range s.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrUserNotFound
}
