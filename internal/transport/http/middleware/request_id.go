package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"docman/internal/requestctx"
)

// HeaderRequestID lets a caller supply its own correlation id; the same
// header echoes the id back on every response.
const HeaderRequestID = "X-Request-ID"

// Inbound ids longer than this are treated as garbage and replaced.
const maxRequestIDLen = 64

// RequestID ensures every request carries a usable id: a sane caller-supplied
// one is kept, anything blank or oversized is swapped for a fresh UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), reqID)))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
