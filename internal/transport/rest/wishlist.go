package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/service/match"
	"github.com/heartmarshall/secret-santa-backend/internal/service/wishlist"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

type wishlistService interface {
	ListOwn(ctx context.Context, participantID uuid.UUID, token string) ([]domain.WishlistItem, error)
	AddItem(ctx context.Context, input wishlist.AddItemInput) (*domain.WishlistItem, error)
	DeleteItem(ctx context.Context, participantID uuid.UUID, token string, itemID uuid.UUID) error
	SetCompleted(ctx context.Context, input wishlist.SetCompletedInput) (*domain.WishlistItem, error)
}

type matchService interface {
	GetMatchView(ctx context.Context, participantID uuid.UUID, token string) (*match.MatchView, error)
}

// ParticipantAreaHandler serves a participant's own wishlist and their view
// of the receiver they give to.
type ParticipantAreaHandler struct {
	wishlist wishlistService
	match    matchService
	log      *slog.Logger
}

// NewParticipantAreaHandler creates a ParticipantAreaHandler.
func NewParticipantAreaHandler(wl wishlistService, m matchService, logger *slog.Logger) *ParticipantAreaHandler {
	return &ParticipantAreaHandler{
		wishlist: wl,
		match:    m,
		log:      logger.With("handler", "participant_area"),
	}
}

type addItemRequest struct {
	Description string `json:"description"`
}

type setCompletedRequest struct {
	Completed bool `json:"completed"`
}

// ListWishlist handles GET /participants/{pid}/wishlist.
func (h *ParticipantAreaHandler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	pid, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.wishlist.ListOwn(r.Context(), pid, ctxutil.VisitorTokenFromCtx(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlistResponses(items))
}

// AddItem handles POST /participants/{pid}/wishlist.
func (h *ParticipantAreaHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	pid, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.wishlist.AddItem(r.Context(), wishlist.AddItemInput{
		ParticipantID: pid,
		VisitorToken:  ctxutil.VisitorTokenFromCtx(r.Context()),
		Description:   req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWishlistItemResponse(item))
}

// DeleteItem handles DELETE /participants/{pid}/wishlist/{itemID}.
func (h *ParticipantAreaHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	pid, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.wishlist.DeleteItem(r.Context(), pid, ctxutil.VisitorTokenFromCtx(r.Context()), itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCompleted handles PUT /participants/{pid}/gifts/{itemID}/completed,
// where pid is the giver.
func (h *ParticipantAreaHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	pid, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req setCompletedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.wishlist.SetCompleted(r.Context(), wishlist.SetCompletedInput{
		GiverID:      pid,
		VisitorToken: ctxutil.VisitorTokenFromCtx(r.Context()),
		ItemID:       itemID,
		Completed:    req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlistItemResponse(item))
}

// Match handles GET /participants/{pid}/match.
func (h *ParticipantAreaHandler) Match(w http.ResponseWriter, r *http.Request) {
	pid, err := pathUUID(r, "pid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.match.GetMatchView(r.Context(), pid, ctxutil.VisitorTokenFromCtx(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(view))
}
