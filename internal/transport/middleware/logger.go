package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// accessRecord collects identities resolved by inner middleware. Auth and
// Visitor run inside Logger and derive their own request contexts, so they
// report back through this pointer instead.
type accessRecord struct {
	ownerID uuid.UUID
	visitor bool
}

type accessRecordKey struct{}

func recordFromCtx(ctx context.Context) *accessRecord {
	rec, _ := ctx.Value(accessRecordKey{}).(*accessRecord)
	return rec
}

func noteOwner(ctx context.Context, id uuid.UUID) {
	if rec := recordFromCtx(ctx); rec != nil {
		rec.ownerID = id
	}
}

func noteVisitor(ctx context.Context) {
	if rec := recordFromCtx(ctx); rec != nil {
		rec.visitor = true
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code and duration, plus request_id, owner_id and a visitor flag
// when those were resolved further down the chain.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			rec := &accessRecord{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessRecordKey{}, rec)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if rec.ownerID != uuid.Nil {
				attrs = append(attrs, slog.String("owner_id", rec.ownerID.String()))
			}
			if rec.visitor {
				attrs = append(attrs, slog.Bool("visitor", true))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
