package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// VisitorTokenHeader carries a participant's return-visit token.
const VisitorTokenHeader = "X-Visitor-Token"

const maxVisitorTokenLength = 128

// Visitor copies the visitor token header into the context. Oversized
// tokens are rejected with 400.
func Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(VisitorTokenHeader))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if len(token) > maxVisitorTokenLength {
			writeError(w, http.StatusBadRequest, "VALIDATION", "visitor token too long")
			return
		}
		noteVisitor(r.Context())
		next.ServeHTTP(w, r.WithContext(ctxutil.WithVisitorToken(r.Context(), token)))
	})
}
