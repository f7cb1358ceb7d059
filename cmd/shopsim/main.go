// Command shopsim loads the starter catalog, opens a shop session for one
// player and plays a scripted sequence of trades, undos and redos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/config"
	"github.com/osse101/shopkeep/internal/economy"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/inventory"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/metrics"
	"github.com/osse101/shopkeep/internal/player"
	"github.com/osse101/shopkeep/internal/server"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shop, info, err := catalog.LoadFile(ctx, cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store, err := inventory.New(cfg.InventoryCapacity)
	if err != nil {
		return err
	}
	p, err := player.New(cfg.PlayerName, cfg.PlayerLevel, cfg.StartingGold, player.WithInventory(store))
	if err != nil {
		return err
	}

	bus := event.NewBus()
	bus.Register(newLogListener())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	metrics.NewEventMetricsCollector(m).Register(bus)

	if cfg.MetricsEnabled() {
		srv := server.NewServer(cfg.MetricsAddr, reg, m, nil)
		go func() {
			if err := srv.Start(); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			if err := srv.Stop(context.Background()); err != nil {
				logger.Error("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	svc := economy.NewService(p, shop,
		economy.WithPublisher(bus),
		economy.WithSellRatio(cfg.SellRatio))

	logger.Info("Shop opened",
		"player", p.Name(),
		"gold", p.Gold().String(),
		"catalog_version", info.Version,
		"items", info.Items)

	playSession(ctx, svc, defaultScript)

	snap := svc.Snapshot()
	logger.Info("Session finished",
		"gold", snap.Gold.String(),
		"stored", snap.Stored,
		"equipped", snap.Equipped,
		"history", svc.History())

	if cfg.MetricsEnabled() {
		logger.Info("Serving metrics until interrupted", "addr", cfg.MetricsAddr)
		<-ctx.Done()
	}
	return nil
}
