package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"storefront"
	"storefront/config"
	"storefront/internal/bot/dialogue"
	"storefront/internal/bot/notifier"
	"storefront/internal/bot/session"
	"storefront/internal/bot/telegram"
	"storefront/internal/infrastructure/apiclient"
	"storefront/internal/infrastructure/broker"
	"storefront/internal/presentation/handler"
	"storefront/pkg/logger"
)

const botConsumer = "storefront-bot"

func HandleBot(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running storefront bot", "version", storefront.StringVersion())

	if err := cfg.CheckBot(); err != nil {
		ExitOnError(err)
	}

	var brokerClient *broker.Client
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err = broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()
	}

	sessions, closeSessions, err := session.New(cfg.Sessions, brokerClient)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := closeSessions(); err != nil {
			logger.Error("failed to close session store", "err", err)
		}
	}()

	api := apiclient.New(cfg.APIClient)

	tgAPI, updates, err := telegram.Connect(cfg.Bot)
	if err != nil {
		ExitOnError(err)
	}

	bot := telegram.NewBot(tgAPI, dialogue.New(api, api, sessions), cfg.Bot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := newHealthServer()
	go func() {
		if err := health.Start(healthAddress(cfg.Bot)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health listener stopped", "err", err)
		}
	}()

	var wg sync.WaitGroup

	if brokerClient != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := notifier.New(broker.NewReceiver(brokerClient), bot, botConsumer)
			if err := n.Run(ctx); err != nil {
				logger.Error("order notifications stopped", "err", err)
			}
		}()
	} else {
		logger.Warn("BROKER_URI is not set, order notifications are disabled")
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		bot.Run(ctx, updates)
	}()

	<-ctx.Done()
	tgAPI.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := health.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop health listener", "err", err)
	}

	wg.Wait()
}

// newHealthServer is the bot's only inbound listener.
func newHealthServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.GET("/health", handler.HandleHealth)

	return e
}

func healthAddress(cfg telegram.Config) string {
	if cfg.HealthAddress == "" {
		return ":8081"
	}

	return cfg.HealthAddress
}
