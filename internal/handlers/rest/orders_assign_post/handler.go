package orders_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"slasty/internal/dto"
	"slasty/internal/service/courier"
	"slasty/internal/service/dispatch"
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
	var request dto.OrdersAssignRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignOrders(r.Context(), request.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrAssignConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrdersAssignResponse{
		Orders: make([]dto.CreatedID, 0, len(assignment.OrderIDs)),
	}
	for _, orderID := range assignment.OrderIDs {
		response.Orders = append(response.Orders, dto.CreatedID{ID: orderID})
	}
	// Пустое назначение отдается без assign_time.
	if len(assignment.OrderIDs) > 0 {
		assignTime := assignment.AssignTime
		response.AssignTime = &assignTime
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
