package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/app"
	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/internal/events"
	"github.com/SergeyBogomolovv/green-basket/internal/handler"
	"github.com/SergeyBogomolovv/green-basket/internal/otp"
	"github.com/SergeyBogomolovv/green-basket/internal/postgres"
	"github.com/SergeyBogomolovv/green-basket/internal/repo"
	"github.com/SergeyBogomolovv/green-basket/internal/service"
	"github.com/SergeyBogomolovv/green-basket/pkg/cache"
	"github.com/SergeyBogomolovv/green-basket/pkg/trm"

	_ "github.com/SergeyBogomolovv/green-basket/docs"
	"github.com/joho/godotenv"
)

// @title           Green Basket Fulfillment API
// @version         1.0
// @description     Оформление и доставка заказов: подбор продавца и курьера, остатки, начисления
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[string, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	attempts, closeAttempts := newAttemptStore(ctx, logger, conf.Redis)
	defer closeAttempts()
	gate := otp.NewGate(otp.NewGenerator(conf.OTP.Mode), attempts, conf.OTP)

	publisher := events.NewPublisher(logger, events.NewKafkaWriter(conf.Kafka))
	calendar := service.NewCalendar(conf.Location(), time.Now)

	orderService := service.NewOrderService(service.Deps{
		Logger:    logger,
		TxManager: txManager,
		Orders:    store,
		Catalog:   store,
		Users:     store,
		Earnings:  store,
		Events:    publisher,
		OTP:       gate,
		Cache:     orderCache,
		Calendar:  calendar,
		Pricing:   service.NewPricing(conf.Pricing),
	})
	stockService := service.NewStockService(logger, txManager, store, store, publisher, calendar)
	partnerService := service.NewPartnerService(logger, store, store)
	earningsService := service.NewEarningsService(logger, store)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, stockService, partnerService, earningsService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	if err := app.Wait(ctx); err != nil {
		logger.Error("application failed", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// newAttemptStore без Redis счетчик попыток OTP живет в памяти процесса,
// это годится только для одного инстанса.
func newAttemptStore(ctx context.Context, logger *slog.Logger, cfg config.Redis) (otp.AttemptStore, func()) {
	if cfg.Addr == "" {
		logger.Warn("redis is not configured, otp attempts are counted in memory")
		return otp.NewMemoryStore(), func() {}
	}

	rdb, err := otp.NewRedisClient(ctx, cfg)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")

	return otp.NewRedisStore(rdb), func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis", slog.Any("error", err))
		}
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
