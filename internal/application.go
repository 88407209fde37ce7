package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one console game against the computer.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run wires the game together over the given input and output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	moveCache, closeCache, err := newMoveCache(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeCache(); err != nil {
			log.Error("could not close move cache", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, moveCache, usecase.Options{
		MaxDepth:     conf.Game.MaxDepth,
		MaxBoardSize: conf.Game.MaxBoardSize,
		Parallel:     conf.Game.Parallel,
	})

	gameCh := make(chan error, 1)
	go func() {
		outcome, gameErr := console.New(logger, gameManager, in, out, conf.Game.BoardSize).Run(ctx)
		if gameErr == nil {
			log.Info("Game over", "outcome", outcome.String())
		}
		gameCh <- gameErr
	}()

	select {
	case err = <-gameCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newMoveCache(ctx context.Context, conf *config.Config) (repository.MoveRepository, func() error, error) {
	if conf.Cache.Driver != config.CacheRedis {
		return repository.NewMemoryMoveRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewMoveRepository(redisStorage, conf.Redis.TTL), redisStorage.Close, nil
}
