package orders_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"slasty/internal/dto"
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
	var request dto.OrdersCompleteRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID, err := h.service.CompleteOrder(r.Context(), request.CourierID, request.OrderID, request.CompleteTime)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCompleteTime),
			errors.Is(err, dispatch.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrdersCompleteResponse{
		OrderID: orderID,
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
