package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"kaidian/internal/config"
	"kaidian/internal/data"
	"kaidian/internal/game"
)

// kaidian-sim plays a whole run headless: every month it starts the turn
// and takes the visible choice with the best success rate. Useful for
// balancing the event and settlement tables against a fixed seed.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config.LoadDotenv()
	cfg := config.LoadSimFromEnv()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	svc := game.NewService(nil, data.Default(), logger)
	gv, err := svc.CreateGame(ctx, game.CreateGameInput{
		PlayerName: "sim",
		TraitID:    cfg.TraitID,
		ShopTypeID: cfg.ShopTypeID,
		LocationID: cfg.LocationID,
		Seed:       cfg.Seed,
	})
	if err != nil {
		logger.Error("create game failed", "err", err)
		os.Exit(1)
	}
	logger.Info("sim started",
		"game_id", gv.ID,
		"months", cfg.Months,
		"trait", cfg.TraitID,
		"shop_type", cfg.ShopTypeID,
		"location", cfg.LocationID,
		"seed", cfg.Seed)

	var last *game.TurnView
	for i := 0; i < cfg.Months; i++ {
		if ctx.Err() != nil {
			logger.Info("sim interrupted")
			return
		}
		ev, err := svc.StartMonth(ctx, gv.ID)
		if err != nil {
			logger.Error("start month failed", "err", err)
			break
		}
		tv, err := svc.Choose(ctx, gv.ID, game.ChooseInput{Code: bestChoice(ev)})
		if err != nil {
			logger.Error("choose failed", "err", err)
			break
		}
		last = tv
		if tv.Game.GameOver {
			break
		}
	}

	if last == nil {
		logger.Error("sim produced no completed months")
		os.Exit(1)
	}
	logger.Info("sim finished",
		"months_survived", last.Game.MonthsSurvived,
		"cash", last.Game.Player.Cash,
		"total_assets", last.Game.TotalAssets,
		"debt", last.Game.Debt,
		"game_over", last.Game.GameOver,
		"reason", last.Game.GameOverReason)
}

func bestChoice(ev *game.EventView) string {
	best := ev.Choices[0]
	for _, c := range ev.Choices[1:] {
		if c.SuccessRate > best.SuccessRate {
			best = c
		}
	}
	return best.Code
}
