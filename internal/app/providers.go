package app

import (
	"context"
	"time"

	"slasty/internal/handlers/rest/courier_get"
	"slasty/internal/handlers/rest/courier_patch"
	"slasty/internal/handlers/rest/couriers_post"
	"slasty/internal/handlers/rest/orders_assign_post"
	"slasty/internal/handlers/rest/orders_complete_post"
	"slasty/internal/handlers/rest/orders_post"
	"slasty/internal/handlers/tasks/queue_depth"
	"slasty/internal/pkg/config"

	assignmentRepo "slasty/internal/repository/assignment"
	courierRepo "slasty/internal/repository/courier"
	orderRepo "slasty/internal/repository/order"
	courierService "slasty/internal/service/courier"
	dispatchService "slasty/internal/service/dispatch"
	orderService "slasty/internal/service/order"

	"slasty/pkg/background"
	"slasty/pkg/logger"
	"slasty/pkg/querier"
	"slasty/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	QueueDepthInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	couriers_post.Service
	courier_get.Service
	courier_patch.Service
}

type ServiceOrder interface {
	orders_post.Service
}

type ServiceDispatch interface {
	orders_assign_post.Service
	orders_complete_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideServiceCourier(
	repository courierService.Repository,
	assignments courierService.AssignmentRepository,
	tariffFactory courierService.TariffFactory,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, assignments, tariffFactory, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	courierSvc dispatchService.CourierService,
	tariffFactory dispatchService.TariffFactory,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(
		repository,
		courierSvc,
		tariffFactory,
		txManager,
	)
}

func provideQueueDepthInterval(cfg *config.Config) QueueDepthInterval {
	return QueueDepthInterval(cfg.Tasks.QueueDepthExportInterval)
}

func provideQueueDepthTask(
	log logger.Logger,
	orderSvc queue_depth.Service,
	interval QueueDepthInterval,
) *queue_depth.QueueDepth {
	return queue_depth.New(log, orderSvc, time.Duration(interval))
}

func provideTaskList(
	queueDepthTask *queue_depth.QueueDepth,
) []background.Task {
	return []background.Task{
		queueDepthTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
