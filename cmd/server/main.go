package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memeclash/internal/cache"
	"memeclash/internal/config"
	"memeclash/internal/game"
	"memeclash/internal/repository"
	"memeclash/internal/store"
	"memeclash/internal/transport/rest"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cmd := &cobra.Command{
		Use:           "memeclash",
		Short:         "Caption battle party game server.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cobra.CheckErr(cmd.Execute())
}

func run(ctx context.Context, cfg *config.Config) error {
	// MongoDB holds the image/theme catalog and the match archive.
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	log.Info().Str("uri", cfg.MongoURI).Msg("connected to mongodb")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis holds the live rooms and the leaderboards.
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")

	imageRepo := repository.NewImageRepo(db)
	matchRepo := repository.NewMatchRepo(db)

	roomStore := store.NewRedis(rdb)
	leaderboard := cache.NewLeaderboardCache(rdb)

	authSvc := game.NewAuthService(cfg.JWTSecret)
	captionSvc := game.NewCaptionService()
	roomSvc := game.NewRoomService(roomStore, imageRepo, cfg.MaxRounds)
	roomSvc.SetScoreboard(leaderboard)
	roomSvc.SetArchive(matchRepo)
	soloSvc := game.NewSoloService(imageRepo, captionSvc)

	aiCfg := config.DefaultAIConfig()
	if aiCfg.IsEnabled() {
		log.Info().Str("judge", aiCfg.Models.Judge).Msg("caption oracle configured")
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, oracle runs on fallbacks")
	}

	router := rest.NewRouter(&rest.Container{
		AuthService: authSvc,
		RoomService: roomSvc,
		SoloService: soloSvc,
		Leaderboard: leaderboard,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
