package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/creditservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Service interface {
	Balance(ctx context.Context, userID string) (*dto.BalanceResponseDTO, error)
	UserTransactions(ctx context.Context, userID string) []domain.Transaction
	Transactions(ctx context.Context) []domain.Transaction
	ShopItems(ctx context.Context) []domain.ShopItem
	Redeem(ctx context.Context, itemID, userID string) (*dto.RedeemResponseDTO, error)
	Voucher(ctx context.Context, code string) (domain.Voucher, error)
	Adjust(ctx context.Context, volunteerID string, req dto.AdjustCreditsRequestDTO) (domain.Transaction, error)
	Members(ctx context.Context) []dto.MemberDTO
	Member(ctx context.Context, volunteerID string) (*dto.MemberDTO, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

func respondWithCreditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrVolunteerNotFound),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, creditservice.ErrVoucherNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, creditservice.ErrInsufficientCredits):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, creditservice.ErrItemUnavailable),
		errors.Is(err, creditservice.ErrInvalidVoucher):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Balance godoc
//
//	@Summary		Current user balance
//	@Description	Credit balance, lifetime totals and the euro value at the club ratio
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Current user is not a volunteer"
//	@Router			/api/me/balance [get]
func (h *CreditHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	balance, err := h.creditService.Balance(r.Context(), userID)
	if err != nil {
		respondWithCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balance)
}

// MyTransactions godoc
//
//	@Summary		Transactions of the current user
//	@Description	Newest first
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Transaction
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/me/transactions [get]
func (h *CreditHandler) MyTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.creditService.UserTransactions(r.Context(), userID))
}

// Transactions godoc
//
//	@Summary	All transactions
//	@Tags		Credits admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Transaction
//	@Failure	403	{object}	utils.Response	"Admins only"
//	@Router		/api/transactions [get]
func (h *CreditHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.creditService.Transactions(r.Context()))
}

// ShopItems godoc
//
//	@Summary	Shop catalogue
//	@Tags		Shop
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	domain.ShopItem
//	@Router		/api/shop/items [get]
func (h *CreditHandler) ShopItems(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.creditService.ShopItems(r.Context()))
}

// Redeem godoc
//
//	@Summary		Redeem a shop item
//	@Description	Spends the item cost and returns a voucher code to show at pickup
//	@Tags			Shop
//	@Security		BearerAuth
//	@Produce		json
//	@Param			itemID	path		string	true	"Shop item id"
//	@Success		200		{object}	dto.RedeemResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient credits"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		422		{object}	utils.Response	"Item unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/items/{itemID}/redeem [post]
func (h *CreditHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	resp, err := h.creditService.Redeem(r.Context(), chi.URLParam(r, "itemID"), userID)
	if err != nil {
		respondWithCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Voucher godoc
//
//	@Summary	Look up a voucher
//	@Tags		Shop admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		code	path		string	true	"Voucher code"
//	@Success	200		{object}	domain.Voucher
//	@Failure	404		{object}	utils.Response	"Voucher not found"
//	@Failure	422		{object}	utils.Response	"Invalid voucher code"
//	@Router		/api/shop/vouchers/{code} [get]
func (h *CreditHandler) Voucher(w http.ResponseWriter, r *http.Request) {
	voucher, err := h.creditService.Voucher(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondWithCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, voucher)
}

// Members godoc
//
//	@Summary		Volunteers with fairness rating
//	@Description	Every volunteer rated active, average or below against the club average of completed tasks
//	@Tags			Members admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.MemberDTO
//	@Router			/api/members [get]
func (h *CreditHandler) Members(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.creditService.Members(r.Context()))
}

// Member godoc
//
//	@Summary	One volunteer with fairness rating
//	@Tags		Members admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		volunteerID	path		string	true	"Volunteer id"
//	@Success	200			{object}	dto.MemberDTO
//	@Failure	404			{object}	utils.Response	"Volunteer not found"
//	@Router		/api/members/{volunteerID} [get]
func (h *CreditHandler) Member(w http.ResponseWriter, r *http.Request) {
	member, err := h.creditService.Member(r.Context(), chi.URLParam(r, "volunteerID"))
	if err != nil {
		respondWithCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

// Adjust godoc
//
//	@Summary		Adjust a volunteer's credits
//	@Description	Positive amounts add credits, negative amounts deduct them. The balance may go below zero.
//	@Tags			Members admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			volunteerID	path		string						true	"Volunteer id"
//	@Param			request		body		dto.AdjustCreditsRequestDTO	true	"Adjustment"
//	@Success		200			{object}	domain.Transaction
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Volunteer not found"
//	@Router			/api/members/{volunteerID}/credits [post]
func (h *CreditHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustCreditsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.creditService.Adjust(r.Context(), chi.URLParam(r, "volunteerID"), req)
	if err != nil {
		respondWithCreditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tx)
}
