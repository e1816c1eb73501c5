// main.go
//
// Entry point for the Bossdle server: loads config and the catalog, restores
// today's session, starts the rollover timer and serves the HTTP API until
// SIGINT/SIGTERM.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bossdle/internal/catalog"
	"github.com/robalobadob/bossdle/internal/config"
	"github.com/robalobadob/bossdle/internal/countdown"
	"github.com/robalobadob/bossdle/internal/daily"
	"github.com/robalobadob/bossdle/internal/game"
	"github.com/robalobadob/bossdle/internal/httpserver"
	"github.com/robalobadob/bossdle/internal/receipt"
	"github.com/robalobadob/bossdle/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	st, err := store.NewByEngine(cfg.StoreEngine, cfg.DataFile)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.StoreEngine).Msg("failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	cal := daily.NewCalendar(cfg.Location(), cfg.Epoch()).WithOffset(cfg.DayOffset)
	eng, err := game.NewEngine(cat, cal, st)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build engine")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng.Load(ctx)

	timer := countdown.New(cfg.RolloverInterval, cal.NextBoundary, func(ctx context.Context) {
		if eng.Rollover(ctx) {
			log.Info().Int("day", eng.Day()).Msg("rolled over to new day")
		}
	})
	timer.Start(ctx)
	defer timer.Stop()

	signer, err := receipt.NewSigner(cfg.ReceiptSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init receipts")
	}

	srv := httpserver.New(eng, cat, signer, httpserver.Options{ClientOrigin: cfg.ClientOrigin})
	log.Info().
		Str("port", cfg.Port).
		Int("entries", cat.Len()).
		Str("timezone", cfg.Timezone).
		Str("store", cfg.StoreEngine).
		Msg("starting bossdle server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}
