// Package dto содержит формы запросов и ответов HTTP API.
package dto

import "time"

type CourierCreate struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

type CouriersCreateRequest struct {
	Data []CourierCreate `json:"data"`
}

type CreatedID struct {
	ID int64 `json:"id"`
}

type CouriersCreateResponse struct {
	Couriers []CreatedID `json:"couriers"`
}

type CouriersValidationError struct {
	Couriers []CreatedID `json:"couriers"`
}

type CouriersErrorResponse struct {
	ValidationError CouriersValidationError `json:"validation_error"`
}

// CourierUpdate - частичное обновление, отсутствующее поле не трогается.
type CourierUpdate struct {
	CourierType  *string   `json:"courier_type"`
	Regions      *[]int64  `json:"regions"`
	WorkingHours *[]string `json:"working_hours"`
}

type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
}

// CourierInfo это профиль вместе с агрегатами, rating опускается целиком,
// пока у курьера нет завершенных заказов.
type CourierInfo struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int64  `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *float64 `json:"rating,omitempty"`
	Earnings     int64    `json:"earnings"`
}

type OrderCreate struct {
	OrderID       int64    `json:"order_id"`
	Weight        float64  `json:"weight"`
	Region        int64    `json:"region"`
	DeliveryHours []string `json:"delivery_hours"`
}

type OrdersCreateRequest struct {
	Data []OrderCreate `json:"data"`
}

type OrdersCreateResponse struct {
	Orders []CreatedID `json:"orders"`
}

type OrdersValidationError struct {
	Orders []CreatedID `json:"orders"`
}

type OrdersErrorResponse struct {
	ValidationError OrdersValidationError `json:"validation_error"`
}

type OrdersAssignRequest struct {
	CourierID int64 `json:"courier_id"`
}

type OrdersAssignResponse struct {
	Orders     []CreatedID `json:"orders"`
	AssignTime *time.Time  `json:"assign_time,omitempty"`
}

type OrdersCompleteRequest struct {
	CourierID    int64     `json:"courier_id"`
	OrderID      int64     `json:"order_id"`
	CompleteTime time.Time `json:"complete_time"`
}

type OrdersCompleteResponse struct {
	OrderID int64 `json:"order_id"`
}

type PingResponse struct {
	Message string `json:"message"`
}
