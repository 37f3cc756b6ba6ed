package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaVersioner is satisfied by *postgres.SchemaInspector.
type schemaVersioner interface {
	SchemaVersion(ctx context.Context) (current, latest int64, err error)
}

// HealthHandler serves the liveness and readiness endpoints. The API is ready only when Postgres
// answers and every embedded migration has been applied: joins and starts
// against a half-migrated schema fail in confusing ways.
type HealthHandler struct {
	db      dbPinger
	schema  schemaVersioner
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaVersioner, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for all health endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready answers 200 when the database is up and migrated, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	h.write(w, ok, HealthResponse{Components: components})
}

// Health is Ready plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	h.write(w, ok, HealthResponse{Version: h.version, Components: components})
}

func (h *HealthHandler) write(w http.ResponseWriter, ok bool, resp HealthResponse) {
	status := http.StatusOK
	resp.Status = "ok"
	if !ok {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
	}
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

// check pings the database, then reads the schema version. The schema is
// skipped when the database is down.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		return components, false
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	current, latest, err := h.schema.SchemaVersion(ctx)
	switch {
	case err != nil:
		components["schema"] = CompStatus{Status: "down"}
		return components, false
	case current < latest:
		components["schema"] = CompStatus{Status: "pending", Detail: fmt.Sprintf("version %d of %d", current, latest)}
		return components, false
	}
	components["schema"] = CompStatus{Status: "ok", Detail: fmt.Sprintf("version %d", current)}
	return components, true
}
