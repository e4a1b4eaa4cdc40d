package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/middleware"

	"github.com/campuscanteen/canteen/internal/menu"
	"github.com/campuscanteen/canteen/internal/mongo"
	"github.com/campuscanteen/canteen/internal/order"
	"github.com/campuscanteen/canteen/pkg"
)

const (
	appNamespace = "CANTEEN"
	appName      = "canteen"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	baseRepo := mongo.NewBaseRepo(config, logger)
	err = baseRepo.Start(ctx)
	if err != nil {
		log.Fatalf("%s(%s) cannot start base repository: %v", appName, appVersion, err)
	}

	db := baseRepo.GetDatabase()
	if db == nil {
		log.Fatalf("%s(%s) cannot initialize repository database: %v", appName, appVersion, errors.New("repository database is nil"))
	}

	itemRepo := mongo.NewMenuItemRepo(db)
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("%s(%s) cannot create menu indexes: %v", appName, appVersion, err)
	}

	orderRepo := mongo.NewOrderRepo(db)
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("%s(%s) cannot create order indexes: %v", appName, appVersion, err)
	}

	// Order events are optional: without a broker the service runs with a
	// noop publisher.
	var publisher events.Publisher = pkg.NoopPublisher{}
	var publisherLifecycle apt.LifecycleHooks
	natsURL, _ := config.GetString("nats.url")
	if natsURL != "" {
		pub, err := pkg.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
		}
		publisher = pub
		publisherLifecycle = apt.LifecycleHooks{
			OnStop: func(context.Context) error {
				return pub.Close()
			},
		}
	}

	menuHandler := menu.NewHandler(menu.HandlerDeps{
		ItemRepo: itemRepo,
	}, config, logger)

	orderHandler := order.NewHandler(order.HandlerDeps{
		OrderRepo: orderRepo,
		Publisher: publisher,
	}, config, logger)

	// Demo catalog seeding on startup, for fresh environments
	demoEnabled, _ := config.GetString("seeding.demo")
	var seedHooks apt.LifecycleHooks
	if demoEnabled == "true" {
		logger.Info("Demo catalog seeding enabled")
		seedHooks = apt.LifecycleHooks{
			OnStart: menu.SeedingFunc(appName, baseRepo.GetDatabase, logger),
		}
	}

	// Public API consumed by the front-end directly, so CORS stays on.
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger:      logger,
		DisableCORS: false,
	})

	lifecycles := []interface{}{
		apt.LifecycleHooks{OnStop: baseRepo.Stop},
	}
	if natsURL != "" {
		lifecycles = append(lifecycles, publisherLifecycle)
	}
	if demoEnabled == "true" {
		lifecycles = append(lifecycles, seedHooks)
	}

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", menuHandler, orderHandler),
		apt.WithLifecycle(lifecycles...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	err = ms.Run(ctx)
	if err != nil {
		_ = baseRepo.Stop(context.Background())
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
