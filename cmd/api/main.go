package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/loudent/library/docs"
	appaccount "github.com/loudent/library/internal/application/account"
	appactivity "github.com/loudent/library/internal/application/activity"
	appcatalog "github.com/loudent/library/internal/application/catalog"
	"github.com/loudent/library/internal/domain/account"
	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/internal/infrastructure/config"
	"github.com/loudent/library/internal/infrastructure/persistence/mysql"
	"github.com/loudent/library/internal/infrastructure/persistence/redis"
	"github.com/loudent/library/internal/interface/http/handler"
	"github.com/loudent/library/internal/interface/http/middleware"
	"github.com/loudent/library/pkg/dispatch"
	"github.com/loudent/library/pkg/metrics"
	"github.com/loudent/library/pkg/mq"
	"github.com/loudent/library/pkg/pool"
	"github.com/loudent/library/pkg/response"
)

// @title        Library Service API
// @version      1.0
// @description  Catalog, account and checkout activity service.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	setupLogging(cfg)
	metrics.Init()

	repos, err := newRepositories(cfg)
	if err != nil {
		logrus.Fatalf("init store: %v", err)
	}

	// Two pools: the dispatcher pool runs whole operations, the service
	// pool runs batch items and enrichment work. Keeping them separate
	// means a flood of batch items cannot starve operation intake.
	dispatcherPool := pool.New("dispatcher", cfg.Pools.Dispatcher.Workers, cfg.Pools.Dispatcher.QueueSize)
	servicePool := pool.New("service", cfg.Pools.Service.Workers, cfg.Pools.Service.QueueSize)
	metrics.WatchPool(dispatcherPool)
	metrics.WatchPool(servicePool)

	dispatcher := dispatch.New(dispatcherPool, cfg.Request.Timeout())

	var publisher *mq.Publisher
	if cfg.MQ.Enabled && cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			logrus.Fatalf("init mq: %v", err)
		}
		defer publisher.Close()
	}

	// Domain layer. The activity store backs both enrichment interfaces.
	accountService := account.NewService(repos.accounts, activity.NewLoanLister(repos.activities))
	catalogService := catalog.NewService(repos.catalogs, activity.NewLoanCounter(repos.activities), servicePool)
	activityService := activity.NewService(repos.activities, repos.catalogs, activity.NewAccountChecker(accountService), servicePool)

	// Application layer.
	getBook := appcatalog.NewGetBookUseCase(dispatcher, catalogService)
	getBookByTitle := appcatalog.NewGetBookByTitleUseCase(dispatcher, catalogService)
	searchCatalog := appcatalog.NewSearchCatalogUseCase(dispatcher, catalogService)
	getAccount := appaccount.NewGetAccountUseCase(dispatcher, accountService)
	checkoutBooks := appactivity.NewCheckoutBooksUseCase(dispatcher, activityService, publisher)
	checkinBooks := appactivity.NewCheckinBooksUseCase(dispatcher, activityService, publisher)

	// Interface layer.
	catalogHandler := handler.NewCatalogHandler(getBook, getBookByTitle, searchCatalog)
	accountHandler := handler.NewAccountHandler(getAccount)
	activityHandler := handler.NewActivityHandler(checkoutBooks, checkinBooks)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())
	registerRoutes(r, catalogHandler, accountHandler, activityHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	// Stop intake first, then let the pools drain accepted work.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("server shutdown")
	}
	if err := pool.StopAll(shutdownCtx, dispatcherPool, servicePool); err != nil {
		logrus.WithError(err).Warn("pool shutdown")
	}
	logrus.Info("stopped")
}

type repositories struct {
	catalogs   catalog.Repository
	accounts   account.Repository
	activities activity.Repository
}

// newRepositories builds the store gateways for the configured backend.
func newRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case "redis":
		client, err := redis.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return &repositories{
			catalogs:   redis.NewCatalogRepository(client),
			accounts:   redis.NewAccountRepository(client),
			activities: redis.NewActivityRepository(client),
		}, nil
	case "mysql":
		db, err := mysql.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		return &repositories{
			catalogs:   mysql.NewCatalogRepository(db),
			accounts:   mysql.NewAccountRepository(db),
			activities: mysql.NewActivityRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func registerRoutes(
	r *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	accountHandler *handler.AccountHandler,
	activityHandler *handler.ActivityHandler,
) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		cat := v1.Group("/catalog")
		{
			cat.GET("/:isbn", catalogHandler.GetBook)
			cat.POST("/title", catalogHandler.GetBookByTitle)
			cat.POST("/search", catalogHandler.SearchCatalog)
		}

		v1.GET("/accounts/:accountNumber", accountHandler.GetAccount)

		act := v1.Group("/activity")
		{
			act.POST("/checkout", activityHandler.CheckoutBooks)
			act.POST("/checkin", activityHandler.CheckinBooks)
		}
	}
}
