package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit page and limit", "?page=3&limit=10", 10, 20},
		{"limit clamped at 100", "?limit=500", 100, 0},
		{"zero limit falls back", "?limit=0", 20, 0},
		{"negative page falls back", "?page=-1&limit=10", 10, 0},
		{"garbage values fall back", "?page=abc&limit=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/audit-logs"+tt.query, nil)
			limit, offset := pagination(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
