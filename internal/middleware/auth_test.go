package middleware

import (
	"context"
	"testing"
)

func TestAuthContextRoundTrip(t *testing.T) {
	ctx := WithAuthContext(context.Background(), &AuthContext{
		AdminID: "adm-1",
		Email:   "staff@lokucaters.dev",
	})

	ac, ok := GetAuthContext(ctx)
	if !ok {
		t.Fatal("auth context not found after WithAuthContext")
	}
	if ac.AdminID != "adm-1" || ac.Email != "staff@lokucaters.dev" {
		t.Fatalf("unexpected auth context %+v", ac)
	}
}

func TestGetAuthContextMissing(t *testing.T) {
	if _, ok := GetAuthContext(context.Background()); ok {
		t.Fatal("expected no auth context on a bare context")
	}
}
