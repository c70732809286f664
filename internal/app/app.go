package app

import (
	"context"
	"fmt"
	"net/http"

	"asmabeauty-go/internal/config"
	"asmabeauty-go/internal/db"
	analyticsdomain "asmabeauty-go/internal/domain/analytics"
	exportdomain "asmabeauty-go/internal/domain/export"
	recordsdomain "asmabeauty-go/internal/domain/records"
	"asmabeauty-go/internal/repository/blob"
	"asmabeauty-go/internal/transport/httpserver"
	"asmabeauty-go/internal/transport/httpserver/handler"
	"asmabeauty-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	store, gormDB, err := newBlobStore(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: loading records", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key)
	records, err := recordsdomain.NewService(context.Background(), store, cfg.Storage.Key)
	if err != nil {
		return nil, err
	}

	analytics := analyticsdomain.NewService(records)
	export := exportdomain.NewService(records)

	handlers := handler.New(records, analytics, export, log)
	router := httpserver.NewRouter(cfg, handlers)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         gormDB,
	}, nil
}

func newBlobStore(cfg config.Config, log logger.Logger) (recordsdomain.Store, *gorm.DB, error) {
	switch cfg.Storage.Backend {
	case "file":
		store, err := blob.NewFile(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("file store: %w", err)
		}
		return store, nil, nil
	case "postgres":
		gormDB, err := db.NewPostgres(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := blob.NewPostgres(gormDB)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		return store, gormDB, nil
	case "memory":
		log.Warn("app: memory storage selected; records will not survive restarts")
		return blob.NewMemory(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
