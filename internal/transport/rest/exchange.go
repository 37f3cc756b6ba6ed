package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/service/exchange"
)

type exchangeService interface {
	CreateExchange(ctx context.Context, input exchange.CreateExchangeInput) (*domain.Exchange, error)
	UpdateSettings(ctx context.Context, input exchange.UpdateSettingsInput) (*domain.Exchange, error)
	StartExchange(ctx context.Context, exchangeID uuid.UUID) (*exchange.StartResult, error)
	EndExchange(ctx context.Context, exchangeID uuid.UUID) (*domain.Exchange, error)
	DeleteExchange(ctx context.Context, exchangeID uuid.UUID) error
	GetExchange(ctx context.Context, exchangeID uuid.UUID) (*domain.Exchange, error)
	ListExchanges(ctx context.Context) ([]domain.Exchange, error)
	Overview(ctx context.Context, exchangeID uuid.UUID) (*exchange.Overview, error)
	History(ctx context.Context, exchangeID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// ExchangeHandler serves the organizer's exchange endpoints.
type ExchangeHandler struct {
	svc exchangeService
	log *slog.Logger
}

// NewExchangeHandler creates an ExchangeHandler.
func NewExchangeHandler(svc exchangeService, logger *slog.Logger) *ExchangeHandler {
	return &ExchangeHandler{svc: svc, log: logger.With("handler", "exchange")}
}

type createExchangeRequest struct {
	Name               string `json:"name"`
	SpendingLimit      int    `json:"spendingLimit"`
	Currency           string `json:"currency"`
	MagicWord          string `json:"magicWord"`
	ShowRecipientNames bool   `json:"showRecipientNames"`
}

type updateSettingsRequest struct {
	Name               *string `json:"name"`
	SpendingLimit      *int    `json:"spendingLimit"`
	Currency           *string `json:"currency"`
	MagicWord          *string `json:"magicWord"`
	ShowRecipientNames *bool   `json:"showRecipientNames"`
}

type startResponse struct {
	Exchange    exchangeResponse `json:"exchange"`
	Assignments int              `json:"assignments"`
}

// Create handles POST /exchanges.
func (h *ExchangeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExchangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ex, err := h.svc.CreateExchange(r.Context(), exchange.CreateExchangeInput{
		Name:               req.Name,
		SpendingLimit:      req.SpendingLimit,
		Currency:           req.Currency,
		MagicWord:          req.MagicWord,
		ShowRecipientNames: req.ShowRecipientNames,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExchangeResponse(ex))
}

// List handles GET /exchanges.
func (h *ExchangeHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListExchanges(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]exchangeResponse, 0, len(list))
	for i := range list {
		out = append(out, toExchangeResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /exchanges/{id}.
func (h *ExchangeHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		ex, err := h.svc.GetExchange(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return toExchangeResponse(ex), nil
	})
}

// Update handles PATCH /exchanges/{id}.
func (h *ExchangeHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		var req updateSettingsRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}
		ex, err := h.svc.UpdateSettings(r.Context(), exchange.UpdateSettingsInput{
			ExchangeID:         id,
			Name:               req.Name,
			SpendingLimit:      req.SpendingLimit,
			Currency:           req.Currency,
			MagicWord:          req.MagicWord,
			ShowRecipientNames: req.ShowRecipientNames,
		})
		if err != nil {
			return nil, err
		}
		return toExchangeResponse(ex), nil
	})
}

// Delete handles DELETE /exchanges/{id}.
func (h *ExchangeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteExchange(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Start handles POST /exchanges/{id}/start.
func (h *ExchangeHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		res, err := h.svc.StartExchange(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return startResponse{
			Exchange:    toExchangeResponse(res.Exchange),
			Assignments: len(res.Assignments),
		}, nil
	})
}

// End handles POST /exchanges/{id}/end.
func (h *ExchangeHandler) End(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		ex, err := h.svc.EndExchange(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return toExchangeResponse(ex), nil
	})
}

// Overview handles GET /exchanges/{id}/overview.
func (h *ExchangeHandler) Overview(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		ov, err := h.svc.Overview(r.Context(), id)
		if err != nil {
			return nil, err
		}
		pairs := make([]pairResponse, 0, len(ov.Assignments))
		for _, a := range ov.Assignments {
			pairs = append(pairs, pairResponse{
				GiverID:      a.GiverID.String(),
				GiverName:    a.GiverName,
				ReceiverID:   a.ReceiverID.String(),
				ReceiverName: a.ReceiverName,
			})
		}
		return overviewResponse{
			Exchange:     toExchangeResponse(ov.Exchange),
			Participants: toParticipantResponses(ov.Participants),
			Pairs:        pairs,
		}, nil
	})
}

// History handles GET /exchanges/{id}/history?limit=N.
func (h *ExchangeHandler) History(w http.ResponseWriter, r *http.Request) {
	h.withExchange(w, r, func(id uuid.UUID) (any, error) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return nil, domain.NewValidationError("limit", "must be a positive integer")
			}
			limit = n
		}
		records, err := h.svc.History(r.Context(), id, limit)
		if err != nil {
			return nil, err
		}
		out := make([]historyEntryResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, toHistoryEntryResponse(rec))
		}
		return out, nil
	})
}

// withExchange parses {id}, runs fn and writes its result as 200 JSON.
func (h *ExchangeHandler) withExchange(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (any, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp, err := fn(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
