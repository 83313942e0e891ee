package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/gridgames/tictactoe-cli/internal/config"
	"github.com/gridgames/tictactoe-cli/internal/entity"
	"github.com/gridgames/tictactoe-cli/internal/service"
	"github.com/gridgames/tictactoe-cli/transport/console"
)

// RunApp wires the match, the bot and the console transport together and
// runs one interactive session.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	game := entity.NewGame(uuid.NewString())
	log.Info("starting match", "game_id", game.ID)

	botService := service.NewBotService()
	gameplay := service.NewGamePlayService(logger, game, botService)
	renderer := console.NewRenderer(os.Stdout, conf.Display.Color)
	session := console.New(logger, gameplay, renderer, os.Stdin, os.Stdout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- session.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("application context canceled, shutting down")
		return nil
	}
}
