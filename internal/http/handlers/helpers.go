package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sankaL/loku-caters-sub000/internal/middleware"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

func readPathString(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// adminEmail reads the acting admin off the request context for audit logs.
func adminEmail(ctx context.Context) string {
	if ac, ok := middleware.GetAuthContext(ctx); ok {
		return ac.Email
	}
	return ""
}

// analyticsNow returns the wall clock in the event timezone so calendar
// buckets line up with local pickup days.
func (h *Handler) analyticsNow() time.Time {
	loc, err := time.LoadLocation(h.Config.EventTimezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}
