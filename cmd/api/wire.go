//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appaccount "github.com/loudent/library/internal/application/account"
	appactivity "github.com/loudent/library/internal/application/activity"
	appcatalog "github.com/loudent/library/internal/application/catalog"
	"github.com/loudent/library/internal/domain/account"
	"github.com/loudent/library/internal/domain/activity"
	"github.com/loudent/library/internal/domain/catalog"
	"github.com/loudent/library/internal/infrastructure/config"
	"github.com/loudent/library/internal/interface/http/handler"
	"github.com/loudent/library/internal/interface/http/middleware"
	"github.com/loudent/library/pkg/dispatch"
	"github.com/loudent/library/pkg/metrics"
	"github.com/loudent/library/pkg/mq"
	"github.com/loudent/library/pkg/pool"
)

// infrastructureSet wires configuration, the store gateways for the
// configured backend, and the optional event publisher.
var infrastructureSet = wire.NewSet(
	config.Load,
	newRepositories,
	providePublisher,
)

// pipelineSet wires the two worker pools and the dispatcher. The service
// pool is the only bare *pool.Pool in the graph; the dispatcher owns its
// own pool internally.
var pipelineSet = wire.NewSet(
	providePools,
	provideServicePool,
	provideDispatcher,
)

var domainSet = wire.NewSet(
	provideCatalogRepository,
	provideAccountRepository,
	provideActivityRepository,
	provideLoanCounter,
	provideLoanLister,
	account.NewService,
	catalog.NewService,
	provideActivityService,
)

var applicationSet = wire.NewSet(
	appcatalog.NewGetBookUseCase,
	appcatalog.NewGetBookByTitleUseCase,
	appcatalog.NewSearchCatalogUseCase,
	appaccount.NewGetAccountUseCase,
	appactivity.NewCheckoutBooksUseCase,
	appactivity.NewCheckinBooksUseCase,
)

var handlerSet = wire.NewSet(
	handler.NewCatalogHandler,
	handler.NewAccountHandler,
	handler.NewActivityHandler,
)

type appPools struct {
	dispatcher *pool.Pool
	service    *pool.Pool
}

func providePools(cfg *config.Config) appPools {
	dispatcherPool := pool.New("dispatcher", cfg.Pools.Dispatcher.Workers, cfg.Pools.Dispatcher.QueueSize)
	servicePool := pool.New("service", cfg.Pools.Service.Workers, cfg.Pools.Service.QueueSize)
	metrics.WatchPool(dispatcherPool)
	metrics.WatchPool(servicePool)
	return appPools{dispatcher: dispatcherPool, service: servicePool}
}

func provideServicePool(pools appPools) *pool.Pool {
	return pools.service
}

func provideDispatcher(cfg *config.Config, pools appPools) *dispatch.Dispatcher {
	return dispatch.New(pools.dispatcher, cfg.Request.Timeout())
}

func providePublisher(cfg *config.Config) (*mq.Publisher, error) {
	if !cfg.MQ.Enabled || cfg.MQ.URL == "" {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

func provideCatalogRepository(repos *repositories) catalog.Repository {
	return repos.catalogs
}

func provideAccountRepository(repos *repositories) account.Repository {
	return repos.accounts
}

func provideActivityRepository(repos *repositories) activity.Repository {
	return repos.activities
}

func provideLoanCounter(repos *repositories) catalog.LoanCounter {
	return activity.NewLoanCounter(repos.activities)
}

func provideLoanLister(repos *repositories) account.LoanLister {
	return activity.NewLoanLister(repos.activities)
}

func provideActivityService(
	repo activity.Repository,
	catalogs catalog.Repository,
	accounts account.Service,
	servicePool *pool.Pool,
) activity.Service {
	return activity.NewService(repo, catalogs, activity.NewAccountChecker(accounts), servicePool)
}

func provideGinEngine(
	cfg *config.Config,
	catalogHandler *handler.CatalogHandler,
	accountHandler *handler.AccountHandler,
	activityHandler *handler.ActivityHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())
	registerRoutes(r, catalogHandler, accountHandler, activityHandler)
	return r
}

// InitializeApp assembles the whole service. Run `wire gen ./cmd/api` to
// regenerate wire_gen.go after changing providers.
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		pipelineSet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
