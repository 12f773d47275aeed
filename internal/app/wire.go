//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"slasty/internal/handlers/tasks/queue_depth"
	"slasty/internal/pkg/config"
	"slasty/internal/pkg/factory/transport_tariff"

	assignmentRepo "slasty/internal/repository/assignment"
	courierRepo "slasty/internal/repository/courier"
	orderRepo "slasty/internal/repository/order"
	courierService "slasty/internal/service/courier"
	dispatchService "slasty/internal/service/dispatch"
	orderService "slasty/internal/service/order"

	"slasty/pkg/logger"
	"slasty/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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
		provideQueueDepthInterval,

		provideCourierRepository,
		provideOrderRepository,
		provideAssignmentRepository,

		provideServiceCourier,
		provideServiceOrder,
		provideServiceDispatch,
		transport_tariff.New,

		provideQueueDepthTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(courierService.TariffFactory), new(*transport_tariff.TariffFactory)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(dispatchService.TariffFactory), new(*transport_tariff.TariffFactory)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(queue_depth.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-created)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
