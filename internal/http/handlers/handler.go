package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sankaL/loku-caters-sub000/internal/config"
	"github.com/sankaL/loku-caters-sub000/internal/queue"
	"github.com/sankaL/loku-caters-sub000/internal/storage"
)

type Handler struct {
	DB     *pgxpool.Pool
	Logger *zap.Logger
	Config config.Config
	Queue  *queue.Client
	Store  *storage.ObjectStore
}
