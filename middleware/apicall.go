package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"homeledger-go/audit"
)

const ApiCallContextKey contextKey = "api_call"

// RecordApiCall persists one ApiCall row per request before the handler
// runs and places its uuid in the request context for audit correlation.
// The row is written outside any mutation transaction: it survives even
// when the handler's mutation later fails.
func RecordApiCall(tracker *audit.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := audit.CallInfo{
				Method:    r.Method,
				Route:     routeTemplate(r),
				IPAddress: clientIP(r),
				UserAgent: r.UserAgent(),
			}
			if claims := GetUserFromContext(r); claims != nil {
				id := claims.UserID
				info.UserID = &id
			}

			callID, err := tracker.RecordCall(info)
			if err != nil {
				log.Printf("Failed to record API call for %s: %v", r.URL.Path, err)
				http.Error(w, "Failed to record API call", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), ApiCallContextKey, callID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetApiCallID(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(ApiCallContextKey).(uuid.UUID)
	return id, ok
}

// routeTemplate returns the matched mux route pattern, e.g.
// "/api/categories/{uuid}", falling back to the raw path.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

// clientIP extracts the caller address, honoring proxy headers.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
