package handlers

import (
	"context"
	"testing"

	"github.com/sankaL/loku-caters-sub000/internal/middleware"
)

func TestAdminEmail(t *testing.T) {
	ctx := middleware.WithAuthContext(context.Background(), &middleware.AuthContext{
		AdminID: "adm-1",
		Email:   "staff@lokucaters.dev",
	})
	if got := adminEmail(ctx); got != "staff@lokucaters.dev" {
		t.Fatalf("adminEmail() = %q, want %q", got, "staff@lokucaters.dev")
	}
	if got := adminEmail(context.Background()); got != "" {
		t.Fatalf("adminEmail() on bare context = %q, want empty", got)
	}
}
