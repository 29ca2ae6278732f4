package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/emergency-d20/internal/common/clock"
	"github.com/KirkDiggler/emergency-d20/internal/common/uuid"
	"github.com/KirkDiggler/emergency-d20/internal/config"
	"github.com/KirkDiggler/emergency-d20/internal/dice"
	"github.com/KirkDiggler/emergency-d20/internal/handlers/discord"
	"github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	"github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	"github.com/KirkDiggler/emergency-d20/internal/repositories/settings"
	"github.com/KirkDiggler/emergency-d20/internal/repositories/token"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/KirkDiggler/emergency-d20/internal/services/table"
	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.Logging.SlogLevel(),
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Bot has been shut down")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	// Initialize repositories
	actorRepo, err := actor.NewRedis(&actor.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	tokenRepo, err := token.NewRedis(&token.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	checkRepo, err := check.NewRedis(&check.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	settingsRepo, err := settings.NewRedis(&settings.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	registered, err := emergency.RegisterSettings(ctx, settingsRepo, &emergency.RegisterSettingsInput{
		ItemName: cfg.Table.ItemName,
	})
	if err != nil {
		return err
	}
	itemName := registered.ItemName
	logger.Info("Resolved item name", "item_name", itemName)

	diceRoller := dice.New(&dice.Config{})

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultTone: messaging.MessageTone(cfg.Table.MessageTone),
	})
	if err != nil {
		return err
	}

	tableSvc, err := table.New(&table.Config{
		ItemName:      itemName,
		GMUserIDs:     cfg.Table.GMUserIDs,
		ActorRepo:     actorRepo,
		TokenRepo:     tokenRepo,
		CheckRepo:     checkRepo,
		DiceRoller:    diceRoller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return err
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	publisher, err := discord.NewPublisher(&discord.PublisherConfig{
		Messenger:    session,
		TableService: tableSvc,
		Messaging:    messagingSvc,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	emergencySvc, err := emergency.New(&emergency.Config{
		ItemName:   itemName,
		GMUserIDs:  cfg.Table.GMUserIDs,
		ActorRepo:  actorRepo,
		TokenRepo:  tokenRepo,
		CheckRepo:  checkRepo,
		Table:      publisher,
		DiceRoller: diceRoller,
		Messaging:  messagingSvc,
		Clock:      &clock.DefaultClock{},
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		ItemName:         itemName,
		EmergencyService: emergencySvc,
		TableService:     tableSvc,
		Messaging:        messagingSvc,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	metricsServer := startMetrics(cfg.Metrics.Addr, logger)

	if err := bot.Start(); err != nil {
		return err
	}
	logger.Info("Bot is now running", "guild_id", cfg.Discord.GuildID)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	sig := <-sc
	logger.Info("Received signal, shutting down", "signal", sig.String())

	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", "error", err)
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error stopping metrics server", "error", err)
		}
	}

	return nil
}

// startMetrics serves /metrics in the background, returning nil when disabled
func startMetrics(addr string, logger *slog.Logger) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()

	return server
}
