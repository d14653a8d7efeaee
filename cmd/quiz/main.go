package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/price-quiz/internal/config"
	"github.com/aliskhannn/price-quiz/internal/delivery/console"
	"github.com/aliskhannn/price-quiz/internal/domain/entities"
	"github.com/aliskhannn/price-quiz/internal/logger"
	"github.com/aliskhannn/price-quiz/internal/repository"
	"github.com/aliskhannn/price-quiz/internal/service"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Seed the catalog and the initial shopping list.
	catalog, err := repository.NewCatalogRepository(cfg.CatalogPath).Load()
	if err != nil {
		lg.Fatal("failed to load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	pool, err := catalog.Pool()
	if err != nil {
		lg.Fatal("invalid catalog", zap.Error(err))
	}
	list := entities.NewShoppingList()
	opts := append(catalog.RefreshOptions(), entities.WithQuantityRange(cfg.Quiz.MinQuantity, cfg.Quiz.MaxQuantity))
	if err = list.Refresh(rng, pool, opts...); err != nil {
		lg.Fatal("failed to build the initial shopping list", zap.Error(err))
	}

	session := entities.NewSession(pool, list)
	engine := service.NewEngine(rng, lg,
		service.WithQuantityRange(cfg.Quiz.MinQuantity, cfg.Quiz.MaxQuantity),
	)

	lg.Info("session started",
		zap.String("session_id", session.ID.String()),
		zap.Int64("seed", seed),
		zap.Int("items", pool.Size()),
		zap.Int("list_len", list.Len()),
	)

	handler := console.NewHandler(os.Stdin, os.Stdout, lg, engine, session)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("console handler failed", zap.Error(err))
		return
	}

	lg.Info("shutdown", zap.String("session_id", session.ID.String()))
}
