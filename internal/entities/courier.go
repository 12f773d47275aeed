package entities

import (
	"time"
)

type Courier struct {
	ID           int64
	Transport    TransportType
	Regions      []int64
	WorkingHours []TimeInterval
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TransportType string

const (
	Foot TransportType = "foot"
	Bike TransportType = "bike"
	Car  TransportType = "car"
)

func (t TransportType) String() string {
	return string(t)
}

// CourierCreate это входные данные создания курьера, рабочие часы
// приходят сырыми строками и разбираются на уровне сервиса.
type CourierCreate struct {
	ID           int64
	Transport    TransportType
	Regions      []int64
	WorkingHours []string
}

// CourierModify описывает частичное обновление, nil-поле значит "не трогать".
type CourierModify struct {
	ID           int64
	Transport    *TransportType
	Regions      *[]int64
	WorkingHours *[]string
}

// CourierPatch - тот же частичный апдейт, но с уже разобранными интервалами,
// в таком виде его принимает репозиторий.
type CourierPatch struct {
	ID           int64
	Transport    *TransportType
	Regions      *[]int64
	WorkingHours *[]TimeInterval
}

// CourierInfo это профиль курьера вместе с выручкой и рейтингом.
// Rating == nil, пока у курьера нет ни одного завершенного заказа.
type CourierInfo struct {
	Courier  Courier
	Rating   *float64
	Earnings int64
}

// CourierStats - агрегаты по завершенным заказам курьера.
type CourierStats struct {
	Earnings              int64
	MinAvgDeliverySeconds *float64
}
