package rest

import "net/http"

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Exchange     *ExchangeHandler
	Participant  *ParticipantHandler
	Participants *ParticipantAreaHandler
}

// NewRouter registers all routes on a new ServeMux. Unknown paths get the
// mux's default 404, wrong methods its 405.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Organizer.
	mux.HandleFunc("POST /exchanges", h.Exchange.Create)
	mux.HandleFunc("GET /exchanges", h.Exchange.List)
	mux.HandleFunc("GET /exchanges/{id}", h.Exchange.Get)
	mux.HandleFunc("PATCH /exchanges/{id}", h.Exchange.Update)
	mux.HandleFunc("DELETE /exchanges/{id}", h.Exchange.Delete)
	mux.HandleFunc("POST /exchanges/{id}/start", h.Exchange.Start)
	mux.HandleFunc("POST /exchanges/{id}/end", h.Exchange.End)
	mux.HandleFunc("GET /exchanges/{id}/overview", h.Exchange.Overview)
	mux.HandleFunc("GET /exchanges/{id}/history", h.Exchange.History)
	mux.HandleFunc("GET /exchanges/{id}/participants", h.Participant.List)
	mux.HandleFunc("DELETE /exchanges/{id}/participants/{pid}", h.Participant.Remove)

	// Invitees.
	mux.HandleFunc("POST /join/lookup", h.Participant.Lookup)
	mux.HandleFunc("POST /exchanges/{id}/join", h.Participant.Join)
	mux.HandleFunc("GET /me", h.Participant.Me)
	mux.HandleFunc("GET /participants/{pid}/wishlist", h.Participants.ListWishlist)
	mux.HandleFunc("POST /participants/{pid}/wishlist", h.Participants.AddItem)
	mux.HandleFunc("DELETE /participants/{pid}/wishlist/{itemID}", h.Participants.DeleteItem)
	mux.HandleFunc("PUT /participants/{pid}/gifts/{itemID}/completed", h.Participants.SetCompleted)
	mux.HandleFunc("GET /participants/{pid}/match", h.Participants.Match)

	return mux
}
