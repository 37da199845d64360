package requests

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/v1/conversations?"+rawQuery, nil)
	return ctx
}

func TestGetPaginationFromQueryDefaults(t *testing.T) {
	pagination, err := GetPaginationFromQuery(newQueryContext(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pagination.Limit == nil || *pagination.Limit != 20 {
		t.Fatalf("expected default limit 20, got %v", pagination.Limit)
	}
	if pagination.Order != "desc" {
		t.Fatalf("expected default order desc, got %q", pagination.Order)
	}
	if pagination.Offset != nil || pagination.After != nil {
		t.Fatal("expected no offset or cursor by default")
	}
}

func TestGetPaginationFromQueryCursor(t *testing.T) {
	pagination, err := GetPaginationFromQuery(newQueryContext(t, "limit=5&order=asc&after=42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *pagination.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", *pagination.Limit)
	}
	if pagination.Order != "asc" {
		t.Fatalf("expected order asc, got %q", pagination.Order)
	}
	if pagination.After == nil || *pagination.After != 42 {
		t.Fatalf("expected cursor 42, got %v", pagination.After)
	}
}

func TestGetPaginationFromQueryOffsetWinsOverCursor(t *testing.T) {
	pagination, err := GetPaginationFromQuery(newQueryContext(t, "offset=10&after=42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pagination.Offset == nil || *pagination.Offset != 10 {
		t.Fatalf("expected offset 10, got %v", pagination.Offset)
	}
	if pagination.After != nil {
		t.Fatal("expected cursor to be ignored when offset is present")
	}
}

func TestGetPaginationFromQueryRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
	}{
		{"non-numeric limit", "limit=abc"},
		{"zero limit", "limit=0"},
		{"negative limit", "limit=-3"},
		{"non-numeric offset", "offset=x"},
		{"non-numeric cursor", "after=conv_x"},
		{"unknown order", "order=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GetPaginationFromQuery(newQueryContext(t, tt.rawQuery)); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
