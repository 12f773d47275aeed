package transport_tariff

import (
	"slasty/internal/entities"
)

const basePayment = 500

// TariffFactory выдает грузоподъемность и ставку оплаты по типу транспорта.
type TariffFactory struct{}

func New() *TariffFactory {
	return &TariffFactory{}
}

func (t *TariffFactory) CapacityCeiling(transportType entities.TransportType) float64 {
	switch transportType {
	case entities.Bike:
		return 15
	case entities.Car:
		return 50
	case entities.Foot:
		return 10
	default:
		return 10
	}
}

func (t *TariffFactory) AssignPayment(transportType entities.TransportType) int64 {
	switch transportType {
	case entities.Bike:
		return basePayment * 5
	case entities.Car:
		return basePayment * 9
	case entities.Foot:
		return basePayment * 2
	default:
		return basePayment * 2
	}
}
