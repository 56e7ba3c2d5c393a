package httpapi

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sankaL/loku-caters-sub000/internal/config"
	"github.com/sankaL/loku-caters-sub000/internal/http/handlers"
	"github.com/sankaL/loku-caters-sub000/internal/middleware"
	"github.com/sankaL/loku-caters-sub000/internal/queue"
	"github.com/sankaL/loku-caters-sub000/internal/storage"
	"github.com/sankaL/loku-caters-sub000/internal/ws"
)

func NewRouter(db *pgxpool.Pool, logger *zap.Logger, cfg config.Config, queueClient *queue.Client, objectStore *storage.ObjectStore, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			AllowCredentials: true,
			MaxAge:           300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{DB: db, Logger: logger, Config: cfg, Queue: queueClient, Store: objectStore}

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/orders", h.PublicOrderCreate)
	r.Get("/api/config", h.EventConfig)
	r.Post("/api/feedback", h.PublicFeedbackCreate)

	r.Post("/api/admin/login", h.AdminLogin)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(db, cfg.JWTSecret))

		r.Get("/dashboard", h.AdminDashboard)

		r.Get("/orders", h.AdminOrderList)
		r.Post("/orders", h.AdminOrderCreate)
		r.Get("/orders/export", h.AdminOrderExportCSV)
		r.Get("/orders/pickup-sheet", h.AdminOrderPickupSheetPDF)
		r.Post("/orders/remind", h.AdminOrderBulkRemind)
		r.Get("/orders/{orderID}", h.AdminOrderDetail)
		r.Patch("/orders/{orderID}/status", h.AdminOrderUpdateStatus)
		r.Patch("/orders/{orderID}/payment", h.AdminOrderUpdatePayment)
		r.Post("/orders/{orderID}/confirm", h.AdminOrderConfirm)
		r.Delete("/orders/{orderID}", h.AdminOrderDelete)

		r.Get("/events", h.AdminEventList)
		r.Post("/events", h.AdminEventCreate)
		r.Put("/events/{eventID}", h.AdminEventUpdate)
		r.Post("/events/{eventID}/activate", h.AdminEventActivate)
		r.Delete("/events/{eventID}", h.AdminEventDelete)
		r.Get("/events/{eventID}/analytics", h.AdminEventAnalytics)

		r.Get("/items", h.AdminItemList)
		r.Post("/items", h.AdminItemCreate)
		r.Put("/items/{itemID}", h.AdminItemUpdate)
		r.Delete("/items/{itemID}", h.AdminItemDelete)

		r.Get("/locations", h.AdminLocationList)
		r.Post("/locations", h.AdminLocationCreate)
		r.Put("/locations/{locationID}", h.AdminLocationUpdate)
		r.Delete("/locations/{locationID}", h.AdminLocationDelete)

		r.Get("/feedback", h.AdminFeedbackList)

		r.Post("/images", h.AdminImageUpload)
		r.Get("/images", h.AdminImageList)
		r.Delete("/images", h.AdminImageDelete)
	})

	if wsServer != nil {
		r.Get("/ws/admin/orders", wsServer.AdminOrdersWS)
	}

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
