package rest

import (
	"time"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/service/match"
)

type exchangeResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	SpendingLimit      int        `json:"spendingLimit"`
	Currency           string     `json:"currency"`
	MagicWord          string     `json:"magicWord"`
	Status             string     `json:"status"`
	ShowRecipientNames bool       `json:"showRecipientNames"`
	StartedAt          *time.Time `json:"startedAt,omitempty"`
	EndedAt            *time.Time `json:"endedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func toExchangeResponse(e *domain.Exchange) exchangeResponse {
	return exchangeResponse{
		ID:                 e.ID.String(),
		Name:               e.Name,
		SpendingLimit:      e.SpendingLimit,
		Currency:           e.Currency,
		MagicWord:          e.MagicWord,
		Status:             e.Status.String(),
		ShowRecipientNames: e.ShowRecipientNames,
		StartedAt:          e.StartedAt,
		EndedAt:            e.EndedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// publicExchangeResponse never carries the magic word or owner.
type publicExchangeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	SpendingLimit      int    `json:"spendingLimit"`
	Currency           string `json:"currency"`
	Status             string `json:"status"`
	ShowRecipientNames bool   `json:"showRecipientNames"`
}

func toPublicExchangeResponse(e domain.PublicExchange) publicExchangeResponse {
	return publicExchangeResponse{
		ID:                 e.ID.String(),
		Name:               e.Name,
		SpendingLimit:      e.SpendingLimit,
		Currency:           e.Currency,
		Status:             e.Status.String(),
		ShowRecipientNames: e.ShowRecipientNames,
	}
}

type participantResponse struct {
	ID          string    `json:"id"`
	ExchangeID  string    `json:"exchangeId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toParticipantResponse(p *domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID.String(),
		ExchangeID:  p.ExchangeID.String(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName(),
		CreatedAt:   p.CreatedAt,
	}
}

func toParticipantResponses(ps []domain.Participant) []participantResponse {
	out := make([]participantResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toParticipantResponse(&ps[i]))
	}
	return out
}

type linkPreviewResponse struct {
	ImageURL    *string `json:"imageUrl,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type wishlistItemResponse struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	URL         *string              `json:"url,omitempty"`
	Preview     *linkPreviewResponse `json:"preview,omitempty"`
	Completed   bool                 `json:"completed"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// toWishlistItemResponse omits CompletedBy: the giver's identity stays
// hidden from everyone but the organizer.
func toWishlistItemResponse(it *domain.WishlistItem) wishlistItemResponse {
	resp := wishlistItemResponse{
		ID:          it.ID.String(),
		Description: it.Description,
		URL:         it.URL,
		Completed:   it.Completed,
		CompletedAt: it.CompletedAt,
		CreatedAt:   it.CreatedAt,
	}
	if it.Preview.ImageURL != nil || it.Preview.Title != nil || it.Preview.Description != nil {
		resp.Preview = &linkPreviewResponse{
			ImageURL:    it.Preview.ImageURL,
			Title:       it.Preview.Title,
			Description: it.Preview.Description,
		}
	}
	return resp
}

func toWishlistResponses(items []domain.WishlistItem) []wishlistItemResponse {
	out := make([]wishlistItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toWishlistItemResponse(&items[i]))
	}
	return out
}

type pairResponse struct {
	GiverID      string `json:"giverId"`
	GiverName    string `json:"giverName"`
	ReceiverID   string `json:"receiverId"`
	ReceiverName string `json:"receiverName"`
}

type overviewResponse struct {
	Exchange     exchangeResponse      `json:"exchange"`
	Participants []participantResponse `json:"participants"`
	Pairs        []pairResponse        `json:"pairs"`
}

type visibilityResponse struct {
	ReceiverWishlist    bool `json:"receiverWishlist"`
	ReceiverName        bool `json:"receiverName"`
	GiverName           bool `json:"giverName"`
	OwnWishlistEditable bool `json:"ownWishlistEditable"`
	CompletionWritable  bool `json:"completionWritable"`
}

type matchResponse struct {
	Exchange     publicExchangeResponse `json:"exchange"`
	Wishlist     []wishlistItemResponse `json:"wishlist"`
	ReceiverName *string                `json:"receiverName,omitempty"`
	GiverName    *string                `json:"giverName,omitempty"`
	Visibility   visibilityResponse     `json:"visibility"`
}

func toMatchResponse(v *match.MatchView) matchResponse {
	return matchResponse{
		Exchange:     toPublicExchangeResponse(v.Exchange),
		Wishlist:     toWishlistResponses(v.WishlistItems),
		ReceiverName: v.ReceiverName,
		GiverName:    v.GiverName,
		Visibility: visibilityResponse{
			ReceiverWishlist:    v.Visibility.ReceiverWishlist,
			ReceiverName:        v.Visibility.ReceiverName,
			GiverName:           v.Visibility.GiverName,
			OwnWishlistEditable: v.Visibility.OwnWishlistEditable,
			CompletionWritable:  v.Visibility.CompletionWritable,
		},
	}
}

type historyEntryResponse struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId,omitempty"`
	ByOwner    bool           `json:"byOwner"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toHistoryEntryResponse(r domain.AuditRecord) historyEntryResponse {
	out := historyEntryResponse{
		ID:         r.ID.String(),
		Action:     string(r.Action),
		EntityType: string(r.EntityType),
		ByOwner:    r.UserID != nil,
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
	if r.EntityID != nil {
		id := r.EntityID.String()
		out.EntityID = &id
	}
	if out.Changes == nil {
		out.Changes = map[string]any{}
	}
	return out
}
