package account

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/apetrei/storefront/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the account module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new account handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterProtectedRoutes registers routes available to any authenticated account.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/account", h.GetOwnAccount)
	r.Put("/account", h.EditOwnAccount)
}

// RegisterAdminRoutes registers admin-only routes.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/accounts", h.ListAccounts)
	r.Delete("/account/{id}", h.DeleteAccount)
}

// ListAccounts handles GET /accounts.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.Success(w, http.StatusOK, accounts)
}

// GetOwnAccount handles GET /account.
func (h *Handler) GetOwnAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httputil.GetAccountID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	account, err := h.service.GetAccountByID(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.Success(w, http.StatusOK, account)
}

// EditAccountRequest represents the request body for editing the caller's account.
// Unknown fields (id, role, password) are rejected at decode time.
type EditAccountRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// EditOwnAccount handles PUT /account.
func (h *Handler) EditOwnAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := httputil.GetAccountID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req EditAccountRequest
	if err := decoder.Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	account, err := h.service.EditOwnAccount(r.Context(), accountID, EditInput(req))
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.Success(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE /account/{id}.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.service.DeleteAccountByID(r.Context(), id); err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleServiceError(r *http.Request, w http.ResponseWriter, err error) {
	httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
		{Error: ErrAccountNotFound, Status: http.StatusNotFound},
		{Error: ErrEmailExists, Status: http.StatusConflict},
	})
}
