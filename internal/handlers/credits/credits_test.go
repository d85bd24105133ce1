package credits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/creditservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, userID string, params map[string]string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, url, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Volunteer balance",
			userID: "vol-1",
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), "vol-1").Return(&dto.BalanceResponseDTO{
					Balance: 85, TotalEarned: 145, TotalSpent: 60, TasksCompleted: 8, EuroValue: 42.5,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Admin has no balance",
			userID: "admin-1",
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), "admin-1").Return(nil, store.ErrVolunteerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Balance(rr, newRequest("GET", "/api/me/balance", tt.userID, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.BalanceResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 85, resp.Balance)
				assert.InDelta(t, 42.5, resp.EuroValue, 1e-9)
			}
		})
	}
}

func TestTransactionsHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UserTransactions(gomock.Any(), "vol-1").Return([]domain.Transaction{{ID: "tx-1", UserID: "vol-1"}})
	service.EXPECT().Transactions(gomock.Any()).Return([]domain.Transaction{{ID: "tx-1"}, {ID: "tx-2"}})

	rr := httptest.NewRecorder()
	handler.MyTransactions(rr, newRequest("GET", "/api/me/transactions", "vol-1", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var mine []domain.Transaction
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&mine))
	assert.Len(t, mine, 1)

	rr = httptest.NewRecorder()
	handler.Transactions(rr, newRequest("GET", "/api/transactions", "admin-1", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var all []domain.Transaction
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&all))
	assert.Len(t, all, 2)
}

func TestShopItemsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ShopItems(gomock.Any()).Return([]domain.ShopItem{{ID: "shop-1", CreditCost: 100, IsAvailable: true}})

	rr := httptest.NewRecorder()
	handler.ShopItems(rr, newRequest("GET", "/api/shop/items", "vol-1", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var items []domain.ShopItem
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&items))
	assert.Equal(t, 100, items[0].CreditCost)
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		itemID        string
		err           error
		expectedCode  int
		expectedError string
	}{
		{name: "Redeemed", itemID: "shop-2", expectedCode: http.StatusOK},
		{name: "Too expensive", itemID: "shop-1", err: creditservice.ErrInsufficientCredits, expectedCode: http.StatusPaymentRequired, expectedError: "insufficient credits"},
		{name: "Unavailable", itemID: "shop-5", err: creditservice.ErrItemUnavailable, expectedCode: http.StatusUnprocessableEntity, expectedError: "shop item is not available"},
		{name: "Unknown item", itemID: "shop-99", err: store.ErrItemNotFound, expectedCode: http.StatusNotFound, expectedError: "shop item not found"},
		{name: "Voucher failure", itemID: "shop-2", err: errors.New("entropy"), expectedCode: http.StatusInternalServerError, expectedError: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *dto.RedeemResponseDTO
			if tt.err == nil {
				resp = &dto.RedeemResponseDTO{
					Transaction: domain.Transaction{ID: "tx-9", UserID: "vol-3", Amount: 20, Type: domain.TransactionSpent},
					Voucher:     domain.Voucher{Code: "123456789015", ItemID: tt.itemID, UserID: "vol-3"},
				}
			}
			service.EXPECT().Redeem(gomock.Any(), tt.itemID, "vol-3").Return(resp, tt.err)

			rr := httptest.NewRecorder()
			handler.Redeem(rr, newRequest("POST", "/api/shop/items/"+tt.itemID+"/redeem", "vol-3", map[string]string{"itemID": tt.itemID}, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestVoucherHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		code         string
		err          error
		expectedCode int
	}{
		{"Known voucher", "123456789015", nil, http.StatusOK},
		{"Bad check digit", "123456789010", creditservice.ErrInvalidVoucher, http.StatusUnprocessableEntity},
		{"Never issued", "000000000000", creditservice.ErrVoucherNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Voucher(gomock.Any(), tt.code).Return(domain.Voucher{Code: tt.code}, tt.err)

			rr := httptest.NewRecorder()
			handler.Voucher(rr, newRequest("GET", "/api/shop/vouchers/"+tt.code, "admin-1", map[string]string{"code": tt.code}, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMembersHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Members(gomock.Any()).Return([]dto.MemberDTO{
		{Volunteer: domain.Volunteer{Profile: domain.Profile{ID: "vol-4"}, TasksCompleted: 17}, Fairness: domain.FairnessActive},
	})
	service.EXPECT().Member(gomock.Any(), "vol-7").Return(&dto.MemberDTO{
		Volunteer: domain.Volunteer{Profile: domain.Profile{ID: "vol-7"}}, Fairness: domain.FairnessBelow,
	}, nil)
	service.EXPECT().Member(gomock.Any(), "vol-99").Return(nil, store.ErrVolunteerNotFound)

	rr := httptest.NewRecorder()
	handler.Members(rr, newRequest("GET", "/api/members", "admin-1", nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.Member(rr, newRequest("GET", "/api/members/vol-7", "admin-1", map[string]string{"volunteerID": "vol-7"}, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	var member dto.MemberDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&member))
	assert.Equal(t, domain.FairnessBelow, member.Fairness)

	rr = httptest.NewRecorder()
	handler.Member(rr, newRequest("GET", "/api/members/vol-99", "admin-1", map[string]string{"volunteerID": "vol-99"}, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdjustHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		volunteerID  string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:        "Deduct",
			volunteerID: "vol-3",
			body:        `{"amount":-10,"description":"Correction"}`,
			prepareMock: func() {
				service.EXPECT().Adjust(gomock.Any(), "vol-3", dto.AdjustCreditsRequestDTO{Amount: -10, Description: "Correction"}).
					Return(domain.Transaction{ID: "tx-9", Amount: 10, Type: domain.TransactionSpent}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Zero amount",
			volunteerID:  "vol-3",
			body:         `{"amount":0,"description":"Nothing"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing description",
			volunteerID:  "vol-3",
			body:         `{"amount":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			volunteerID:  "vol-3",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "Unknown volunteer",
			volunteerID: "admin-1",
			body:        `{"amount":5,"description":"Bonus"}`,
			prepareMock: func() {
				service.EXPECT().Adjust(gomock.Any(), "admin-1", gomock.Any()).Return(domain.Transaction{}, creditservice.ErrVolunteerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			req := newRequest("POST", "/api/members/"+tt.volunteerID+"/credits", "admin-1",
				map[string]string{"volunteerID": tt.volunteerID}, bytes.NewReader([]byte(tt.body)))
			handler.Adjust(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
