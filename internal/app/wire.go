//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	awb_assign_post "github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/rest/awb_assign_post"
	awb_pool_upload_post "github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/rest/awb_pool_upload_post"
	awb_release_post "github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/rest/awb_release_post"
	shipment_status_bulk_post "github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/rest/shipment_status_bulk_post"
	shipment_status_put "github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/rest/shipment_status_put"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/tasks/job_cleanup"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/handlers/tasks/pool_metrics"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/pkg/config"

	awbRepo "github.com/navneet-limitinfinity/haul-riders-sub000/internal/repository/awb"
	orderRepo "github.com/navneet-limitinfinity/haul-riders-sub000/internal/repository/order"
	poolService "github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/awbpool"
	orderService "github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/order"
	shipmentService "github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/shipment"

	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/background"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/jobstore"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/querier"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	JobCleanupInterval  time.Duration
	JobTTL              time.Duration
	PoolMetricsInterval time.Duration
)

type Application struct {
	ServicePool       ServicePool
	ServiceShipment   ServiceShipment
	Jobs              jobstore.Registry
	BackgroundWorkers *background.Worker
}

type ServicePool interface {
	awb_pool_upload_post.Service
	awb_assign_post.PoolService
	awb_release_post.Service
}

type ServiceShipment interface {
	awb_assign_post.ShipmentService
	shipment_status_put.Service
	shipment_status_bulk_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideJobCleanupInterval,
		provideJobTTL,
		providePoolMetricsInterval,

		provideAwbRepository,
		provideOrderRepository,

		provideServicePool,
		provideServiceShipment,

		provideJobRegistry,
		provideJobCleanupTask,
		providePoolMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePool), new(*poolService.AwbPool)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),

		wire.Bind(new(poolService.Repository), new(*awbRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(poolService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pool_metrics.Service), new(*poolService.AwbPool)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-created)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,
		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAwbRepository(querier *querier.Querier) *awbRepo.Repository {
	return awbRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServicePool(
	log logger.Logger,
	repository poolService.Repository,
	txManager poolService.TxManager,
) *poolService.AwbPool {
	return poolService.New(log, repository, txManager)
}

func provideServiceShipment(
	log logger.Logger,
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(log, repository, txManager)
}

func provideOrderService(repository orderService.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideJobCleanupInterval(cfg *config.Config) JobCleanupInterval {
	return JobCleanupInterval(cfg.Tasks.JobCleanupInterval)
}

func provideJobTTL(cfg *config.Config) JobTTL {
	return JobTTL(cfg.Tasks.JobTTL)
}

func providePoolMetricsInterval(cfg *config.Config) PoolMetricsInterval {
	return PoolMetricsInterval(cfg.Tasks.PoolMetricsInterval)
}

func provideJobRegistry(ttl JobTTL) jobstore.Registry {
	return jobstore.New(time.Duration(ttl))
}

func provideJobCleanupTask(
	log logger.Logger,
	registry jobstore.Registry,
	interval JobCleanupInterval,
) *job_cleanup.JobCleanup {
	return job_cleanup.NewJobCleanup(log, registry, time.Duration(interval))
}

func providePoolMetricsTask(
	service pool_metrics.Service,
	interval PoolMetricsInterval,
) *pool_metrics.PoolMetrics {
	return pool_metrics.NewPoolMetrics(service, time.Duration(interval))
}

func provideTaskList(
	jobCleanupTask *job_cleanup.JobCleanup,
	poolMetricsTask *pool_metrics.PoolMetrics,
) []background.Task {
	return []background.Task{
		jobCleanupTask,
		poolMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
