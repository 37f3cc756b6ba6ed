package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/auth"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/service/participant"
	"github.com/heartmarshall/secret-santa-backend/internal/transport/middleware"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

type participantService interface {
	FindExchange(ctx context.Context, input participant.FindExchangeInput) (*domain.PublicExchange, error)
	Join(ctx context.Context, input participant.RegisterInput) (*participant.JoinResult, error)
	ResolveVisitor(ctx context.Context, token string) (*domain.Participant, error)
	ListParticipants(ctx context.Context, exchangeID uuid.UUID) ([]domain.Participant, error)
	RemoveParticipant(ctx context.Context, exchangeID, participantID uuid.UUID) error
}

// ParticipantHandler serves invitee entry points and the organizer's
// participant management.
type ParticipantHandler struct {
	svc      participantService
	log      *slog.Logger
	newToken func() (string, error)
}

// NewParticipantHandler creates a ParticipantHandler.
func NewParticipantHandler(svc participantService, logger *slog.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		svc:      svc,
		log:      logger.With("handler", "participant"),
		newToken: auth.GenerateVisitorToken,
	}
}

type lookupRequest struct {
	OwnerLastName string `json:"ownerLastName"`
	MagicWord     string `json:"magicWord"`
}

type joinRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type joinResponse struct {
	Participant  participantResponse    `json:"participant"`
	Exchange     publicExchangeResponse `json:"exchange"`
	Returning    bool                   `json:"returning"`
	VisitorToken string                 `json:"visitorToken"`
}

// Lookup handles POST /join/lookup.
func (h *ParticipantHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ex, err := h.svc.FindExchange(r.Context(), participant.FindExchangeInput{
		OwnerLastName: req.OwnerLastName,
		MagicWord:     req.MagicWord,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicExchangeResponse(*ex))
}

// Join handles POST /exchanges/{id}/join. A visitor without a token gets a
// freshly minted one, returned in the body and the X-Visitor-Token header.
func (h *ParticipantHandler) Join(w http.ResponseWriter, r *http.Request) {
	exchangeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req joinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	token := ctxutil.VisitorTokenFromCtx(r.Context())
	if token == "" {
		token, err = h.newToken()
		if err != nil {
			handleError(h.log, w, r, fmt.Errorf("mint visitor token: %w", err))
			return
		}
	}

	res, err := h.svc.Join(r.Context(), participant.RegisterInput{
		ExchangeID:   exchangeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		VisitorToken: token,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Returning {
		status = http.StatusOK
	}
	w.Header().Set(middleware.VisitorTokenHeader, token)
	writeJSON(w, status, joinResponse{
		Participant:  toParticipantResponse(res.Participant),
		Exchange:     toPublicExchangeResponse(res.Exchange),
		Returning:    res.Returning,
		VisitorToken: token,
	})
}

// Me handles GET /me.
func (h *ParticipantHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ResolveVisitor(r.Context(), ctxutil.VisitorTokenFromCtx(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponse(p))
}

// List handles GET /exchanges/{id}/participants.
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	exchangeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListParticipants(r.Context(), exchangeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponses(list))
}

// Remove handles DELETE /exchanges/{id}/participants/{pid}.
func (h *ParticipantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	exchangeID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	participantID, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveParticipant(r.Context(), exchangeID, participantID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
