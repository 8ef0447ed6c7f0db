package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeledger-go/audit"
	"homeledger-go/database"
	"homeledger-go/models"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr without proxy",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for takes the first hop",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			want:       "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/health", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}

func TestRecordApiCall(t *testing.T) {
	db, err := database.Initialize(filepath.Join(t.TempDir(), "middleware_test.db"))
	require.NoError(t, err)
	tracker := audit.NewTracker(db)

	var capturedID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetApiCallID(r)
		require.True(t, ok)
		capturedID = id
		w.WriteHeader(http.StatusOK)
	})

	router := mux.NewRouter()
	router.Handle("/api/categories/{uuid}", RecordApiCall(tracker)(handler)).Methods("GET")

	req := httptest.NewRequest("GET", "/api/categories/"+uuid.New().String(), nil)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEqual(t, uuid.Nil, capturedID)

	var call models.ApiCall
	require.NoError(t, db.First(&call, "uuid = ?", capturedID).Error)
	assert.Nil(t, call.UserID)
	require.NotNil(t, call.Method)
	assert.Equal(t, "GET", *call.Method)
	require.NotNil(t, call.Route)
	assert.Equal(t, "/api/categories/{uuid}", *call.Route)
	require.NotNil(t, call.IPAddress)
	assert.Equal(t, "203.0.113.7", *call.IPAddress)
	require.NotNil(t, call.UserAgent)
	assert.Equal(t, "test-agent", *call.UserAgent)
}

func TestGetApiCallIDMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/health", nil)
	_, ok := GetApiCallID(r)
	assert.False(t, ok)
}
