package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"slasty/internal/dto"
	"slasty/internal/entities"
	"slasty/internal/service/order"
	"slasty/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.OrdersCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders := make([]entities.OrderCreate, 0, len(request.Data))
	for _, orderDTO := range request.Data {
		orders = append(orders, entities.OrderCreate{
			ID:            orderDTO.OrderID,
			Weight:        orderDTO.Weight,
			Region:        orderDTO.Region,
			DeliveryHours: orderDTO.DeliveryHours,
		})
	}

	ids, err := h.service.CreateOrders(r.Context(), orders)
	if err != nil {
		var validationErr *order.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.writeValidationError(w, validationErr)
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrdersCreateResponse{
		Orders: make([]dto.CreatedID, 0, len(ids)),
	}
	for _, id := range ids {
		response.Orders = append(response.Orders, dto.CreatedID{ID: id})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeValidationError(w http.ResponseWriter, validationErr *order.ValidationError) {
	response := dto.OrdersErrorResponse{}
	for _, id := range validationErr.IDs {
		response.ValidationError.Orders = append(response.ValidationError.Orders, dto.CreatedID{ID: id})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
