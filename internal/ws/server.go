package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sankaL/loku-caters-sub000/internal/auth"
	"github.com/sankaL/loku-caters-sub000/internal/config"
	"github.com/sankaL/loku-caters-sub000/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server pushes order snapshots to connected back-office clients. Each
// connection polls nothing itself; a single poll loop re-reads the order set
// and broadcasts when it changes.
type Server struct {
	DB     *pgxpool.Pool
	Logger *zap.Logger
	Config config.Config

	started  sync.Once
	mu       sync.RWMutex
	subs     map[*wsClient]struct{}
	lastSent []byte
}

func New(db *pgxpool.Pool, logger *zap.Logger, cfg config.Config) *Server {
	return &Server{
		DB:     db,
		Logger: logger,
		Config: cfg,
		subs:   make(map[*wsClient]struct{}),
	}
}

type wsClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *wsClient) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(value)
}

func (c *wsClient) writePing() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
}

func (s *Server) ensureStarted() {
	s.started.Do(func() {
		go s.pollLoop(context.Background())
	})
}

func (s *Server) subscribe(client *wsClient) (unsubscribe func()) {
	s.mu.Lock()
	s.subs[client] = struct{}{}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, client)
		s.mu.Unlock()
	}
}

func (s *Server) broadcast(message any) {
	s.mu.RLock()
	clients := make([]*wsClient, 0, len(s.subs))
	for c := range s.subs {
		clients = append(clients, c)
	}
	s.mu.RUnlock()

	for _, c := range clients {
		if err := c.writeJSON(message); err != nil {
			_ = c.conn.Close()
			s.mu.Lock()
			delete(s.subs, c)
			s.mu.Unlock()
		}
	}
}

func (s *Server) snapshot(ctx context.Context) ([]store.Order, []byte, error) {
	orders, err := store.ListOrders(ctx, s.DB, "")
	if err != nil {
		return nil, nil, err
	}
	encoded, err := json.Marshal(orders)
	if err != nil {
		return nil, nil, err
	}
	return orders, encoded, nil
}

func (s *Server) pollLoop(ctx context.Context) {
	interval := s.Config.WSPollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		idle := len(s.subs) == 0
		s.mu.RUnlock()
		if idle {
			continue
		}

		orders, encoded, err := s.snapshot(ctx)
		if err != nil {
			s.Logger.Warn("order feed poll failed", zap.Error(err))
			continue
		}

		s.mu.Lock()
		changed := !bytes.Equal(encoded, s.lastSent)
		if changed {
			s.lastSent = encoded
		}
		s.mu.Unlock()

		if changed {
			s.broadcast(map[string]any{"type": "orders.state", "data": orders})
		}
	}
}

// AdminOrdersWS upgrades the connection, verifies the admin token from the
// query string, sends the current order set, then keeps the client on the
// broadcast list until it disconnects.
func (s *Server) AdminOrdersWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	token := auth.ParseBearerToken(r.URL.Query().Get("token"))
	if _, err := auth.VerifyAdminToken(token, s.Config.JWTSecret); err != nil {
		_ = conn.WriteJSON(map[string]any{"type": "error", "message": "unauthorized"})
		return
	}

	s.ensureStarted()
	ctx := r.Context()
	client := &wsClient{conn: conn}
	unsubscribe := s.subscribe(client)
	defer unsubscribe()

	// Send initial orders snapshot immediately
	if orders, _, snapErr := s.snapshot(ctx); snapErr == nil {
		_ = client.writeJSON(map[string]any{"type": "orders.state", "data": orders})
	}

	heartbeat := s.Config.WSHeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(heartbeat * 2))
	})
	_ = conn.SetReadDeadline(time.Now().Add(heartbeat * 2))

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	pinger := time.NewTicker(heartbeat)
	defer pinger.Stop()

	for {
		select {
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		case <-pinger.C:
			if err := client.writePing(); err != nil {
				return
			}
		}
	}
}
