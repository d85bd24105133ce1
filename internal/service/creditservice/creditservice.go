package creditservice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/metrics"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Store interface {
	Volunteer(id string) (domain.Volunteer, error)
	Volunteers() []domain.Volunteer
	UserTransactions(userID string) []domain.Transaction
	Transactions() []domain.Transaction
	ShopItems() []domain.ShopItem
	RedeemIfAffordable(itemID, userID string) (domain.ShopItem, domain.Transaction, error)
	AdjustCredits(volunteerID string, amount int, description string) domain.Transaction
	Club() domain.Club
	Notify(userID string, kind domain.NotificationType, title, message string) domain.Notification
}

var (
	ErrItemUnavailable     = store.ErrItemUnavailable
	ErrInsufficientCredits = store.ErrInsufficientCredits
	ErrInvalidVoucher      = errors.New("invalid voucher code")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrVolunteerNotFound   = store.ErrVolunteerNotFound
)

const (
	activeRatio  = 1.2
	averageRatio = 0.8
)

type Service struct {
	store Store

	mu       sync.RWMutex
	vouchers map[string]domain.Voucher
}

func New(store Store) *Service {
	return &Service{
		store:    store,
		vouchers: make(map[string]domain.Voucher),
	}
}

func (s *Service) Balance(_ context.Context, userID string) (*dto.BalanceResponseDTO, error) {
	v, err := s.store.Volunteer(userID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponseDTO{
		Balance:        v.CreditBalance,
		TotalEarned:    v.TotalEarned,
		TotalSpent:     v.TotalSpent,
		TasksCompleted: v.TasksCompleted,
		EuroValue:      float64(v.CreditBalance) * s.store.Club().CreditToEuroRatio,
	}, nil
}

func (s *Service) UserTransactions(_ context.Context, userID string) []domain.Transaction {
	return s.store.UserTransactions(userID)
}

func (s *Service) Transactions(_ context.Context) []domain.Transaction {
	return s.store.Transactions()
}

func (s *Service) ShopItems(_ context.Context) []domain.ShopItem {
	return s.store.ShopItems()
}

// Redeem refuses unavailable items and balances below the cost, books the
// spend and hands out a voucher code.
func (s *Service) Redeem(_ context.Context, itemID, userID string) (*dto.RedeemResponseDTO, error) {
	item, tx, err := s.store.RedeemIfAffordable(itemID, userID)
	switch {
	case errors.Is(err, ErrItemUnavailable):
		metrics.Redemption("unavailable")
		return nil, err
	case errors.Is(err, ErrInsufficientCredits):
		metrics.Redemption("insufficient")
		zap.L().Info("redeem refused", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Int("cost", item.CreditCost))
		return nil, err
	case err != nil:
		zap.L().Info("can't redeem shop item", zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}

	code, err := validate.VoucherCode()
	if err != nil {
		zap.L().Error("can't issue voucher", zap.Error(err))
		return nil, err
	}
	voucher := domain.Voucher{Code: code, TransactionID: tx.ID, ItemID: item.ID, UserID: userID}
	s.mu.Lock()
	s.vouchers[code] = voucher
	s.mu.Unlock()

	metrics.Redemption("ok")
	metrics.CreditsSpent(tx.Amount)
	s.store.Notify(userID, domain.NotificationShop, "Shop item redeemed",
		fmt.Sprintf("Your %s is ready for pickup. Voucher %s", item.Name, code))
	zap.L().Info("shop item redeemed", zap.String("user_id", userID), zap.String("item_id", itemID))

	return &dto.RedeemResponseDTO{Transaction: tx, Voucher: voucher}, nil
}

// Voucher looks up an issued code. Codes failing the Luhn check are rejected
// before the lookup.
func (s *Service) Voucher(_ context.Context, code string) (domain.Voucher, error) {
	if !validate.IsLuhn(code) {
		return domain.Voucher{}, ErrInvalidVoucher
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vouchers[code]
	if !ok {
		return domain.Voucher{}, ErrVoucherNotFound
	}
	return v, nil
}

func (s *Service) Adjust(_ context.Context, volunteerID string, req dto.AdjustCreditsRequestDTO) (domain.Transaction, error) {
	if _, err := s.store.Volunteer(volunteerID); err != nil {
		return domain.Transaction{}, err
	}
	tx := s.store.AdjustCredits(volunteerID, req.Amount, req.Description)
	metrics.CreditsAdjusted(req.Amount)

	title := "Credits added"
	if req.Amount < 0 {
		title = "Credits deducted"
	}
	s.store.Notify(volunteerID, domain.NotificationCredit, title,
		fmt.Sprintf("%+d credits: %s", req.Amount, req.Description))
	zap.L().Info("credits adjusted", zap.String("volunteer_id", volunteerID), zap.Int("amount", req.Amount))
	return tx, nil
}

func (s *Service) Members(_ context.Context) []dto.MemberDTO {
	volunteers := s.store.Volunteers()
	avg := averageTasks(volunteers)

	out := make([]dto.MemberDTO, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, dto.MemberDTO{Volunteer: v, Fairness: Fairness(v.TasksCompleted, avg)})
	}
	return out
}

func (s *Service) Member(_ context.Context, volunteerID string) (*dto.MemberDTO, error) {
	v, err := s.store.Volunteer(volunteerID)
	if err != nil {
		return nil, err
	}
	return &dto.MemberDTO{
		Volunteer: v,
		Fairness:  Fairness(v.TasksCompleted, averageTasks(s.store.Volunteers())),
	}, nil
}

// Fairness rates a volunteer's completed tasks against the club average.
func Fairness(tasksCompleted int, average float64) domain.Fairness {
	if average == 0 {
		return domain.FairnessNA
	}
	ratio := float64(tasksCompleted) / average
	switch {
	case ratio > activeRatio:
		return domain.FairnessActive
	case ratio >= averageRatio:
		return domain.FairnessAverage
	default:
		return domain.FairnessBelow
	}
}

func averageTasks(volunteers []domain.Volunteer) float64 {
	if len(volunteers) == 0 {
		return 0
	}
	total := 0
	for _, v := range volunteers {
		total += v.TasksCompleted
	}
	return float64(total) / float64(len(volunteers))
}
