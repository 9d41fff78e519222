package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agriconnect/agriconnect-backend/internal/products"
)

func TestProductsFeaturedRejectsMalformedLimit(t *testing.T) {
	handler := ProductsFeatured(products.NewService(nil, nil, nil), nil)

	for _, raw := range []string{"abc", "-2", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/featured?limit="+raw, nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit %q: expected 400, got %d", raw, rec.Code)
		}
	}
}

func TestParseLimitUnsetMeansServiceDefault(t *testing.T) {
	limit, err := parseLimit("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 0 {
		t.Fatalf("expected 0 for unset limit, got %d", limit)
	}

	limit, err = parseLimit("12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 12 {
		t.Fatalf("expected 12, got %d", limit)
	}
}
