package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"
	amqp "github.com/rabbitmq/amqp091-go"

	"drp/internal/api"
	"drp/internal/api/handlers/http/system"
	"drp/internal/config"
	"drp/internal/evacuation"
	"drp/internal/mqtt"
	"drp/internal/notifier"
	"drp/internal/observability"
	"drp/internal/ors"
	"drp/internal/push"
	"drp/internal/rabbitmq"
	"drp/internal/redis"
	"drp/internal/service"
	"drp/internal/storage/postgres"
	"drp/internal/workers"
	"drp/pkg/logger"
)

const guestSweepInterval = time.Hour

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Queue      *redis.NotificationQueue
	Dispatcher *workers.NotificationDispatcher
	Janitor    *workers.GuestJanitor

	rabbitConn *amqp.Connection
	publisher  *rabbitmq.IncidentPublisher
	mqttClient paho.Client
	subscriber *mqtt.LocationSubscriber

	wg sync.WaitGroup
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}
	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	c.Postgres = storage

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient
	c.Queue = redis.NewNotificationQueue(redisClient.Client, redis.NotificationQueueKey)
	cache := redis.NewIncidentCache(redisClient)

	var publisher service.IncidentPublisher
	if !cfg.RabbitMQ.Disabled {
		logger.Info("Initializing RabbitMQ")
		conn, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init rabbitmq: %w", err)
		}
		c.rabbitConn = conn
		c.publisher, err = rabbitmq.NewIncidentPublisher(conn, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init incident publisher: %w", err)
		}
		publisher = c.publisher
	}

	var sender notifier.PushSender
	if cfg.Firebase.PushDisabled {
		logger.Warn("push delivery disabled, notifications are only logged")
		sender = push.NewLogSender(logger)
	} else {
		fcm, err := push.NewFCMSender(ctx, cfg.Firebase.CredentialsFile, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init firebase messaging: %w", err)
		}
		sender = fcm
	}

	notifierSvc := notifier.New(
		notifier.Config{SearchRadius: cfg.Notifier.SearchRadius, LiveFreshness: cfg.Notifier.LiveFreshness},
		storage.Location, storage.Token, sender, storage.Notification, clock, metrics, logger,
	)
	c.Dispatcher = workers.NewNotificationDispatcher(c.Queue, notifierSvc, cfg.Notifier.Workers, cfg.Notifier.JobTimeout, logger)
	c.Janitor = workers.NewGuestJanitor(storage.Location, guestSweepInterval, cfg.Notifier.GuestTTL, clock, logger)

	router := ors.NewClient(cfg.ORS.BaseURL, cfg.ORS.APIKey, cfg.ORS.Timeout, metrics, logger)
	planner := evacuation.NewPlanner(router, logger)

	incidentSvc := service.NewIncidentService(storage.Incident, cache, c.Queue, publisher, metrics, clock,
		service.IncidentOptions{ActiveCacheTTL: cfg.Redis.ActiveCacheTTL, NearRadius: cfg.Notifier.SearchRadius}, logger)
	locationSvc := service.NewLocationService(storage.Location, clock, logger)

	srv := service.NewService(
		incidentSvc,
		locationSvc,
		service.NewTokenService(storage.Token, clock, logger),
		service.NewShelterService(storage.Shelter),
		service.NewRouteService(incidentSvc, storage.Shelter, planner, cfg.Navigator.HitAreaRadius, logger),
		service.NewNotificationService(storage.Notification),
	)

	if !cfg.MQTT.Disabled {
		logger.Info("Initializing MQTT")
		client, err := mqtt.NewClient(cfg.MQTT, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init mqtt: %w", err)
		}
		c.mqttClient = client
		c.subscriber = mqtt.NewLocationSubscriber(client, cfg.MQTT.LocationTopic, locationSvc, logger)
		if err := c.subscriber.Start(); err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to subscribe to device locations: %w", err)
		}
	}

	c.HttpServer = api.NewServer(cfg, logger, srv, map[string]system.Pinger{
		"postgres": storage,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	return c, nil
}

// StartWorkers runs the background workers until ctx is done.
func (c *Components) StartWorkers(ctx context.Context) {
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.Dispatcher.Run(ctx)
	}()
	go func() {
		defer c.wg.Done()
		c.Janitor.Run(ctx)
	}()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll waits for the workers started by StartWorkers, then closes
// connections in reverse order of creation.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.wg.Wait()

	if c.subscriber != nil {
		if err := c.subscriber.Stop(); err != nil {
			c.logger.Warn("MQTT unsubscribe failed", slog.Any("error", err))
		}
	}
	if c.mqttClient != nil {
		c.mqttClient.Disconnect(250)
	}
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Warn("RabbitMQ channel close failed", slog.Any("error", err))
		}
	}
	if c.rabbitConn != nil {
		if err := c.rabbitConn.Close(); err != nil {
			c.logger.Warn("RabbitMQ close failed", slog.Any("error", err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
