package entities

import "time"

const (
	MinOrderWeight = 0.01
	MaxOrderWeight = 50
)

type Order struct {
	ID            int64
	Weight        float64
	Region        int64
	DeliveryHours []TimeInterval
	IsAssigned    bool
	CreatedAt     time.Time
}

// OrderCreate это входные данные создания заказа, окна доставки
// приходят сырыми строками и разбираются на уровне сервиса.
type OrderCreate struct {
	ID            int64
	Weight        float64
	Region        int64
	DeliveryHours []string
}
