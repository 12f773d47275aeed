package couriers_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"slasty/internal/dto"
	"slasty/internal/entities"
	"slasty/internal/service/courier"
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
	var request dto.CouriersCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	couriers := make([]entities.CourierCreate, 0, len(request.Data))
	for _, courierDTO := range request.Data {
		couriers = append(couriers, entities.CourierCreate{
			ID:           courierDTO.CourierID,
			Transport:    entities.TransportType(courierDTO.CourierType),
			Regions:      courierDTO.Regions,
			WorkingHours: courierDTO.WorkingHours,
		})
	}

	ids, err := h.service.CreateCouriers(r.Context(), couriers)
	if err != nil {
		var validationErr *courier.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.writeValidationError(w, validationErr)
		case errors.Is(err, courier.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CouriersCreateResponse{
		Couriers: make([]dto.CreatedID, 0, len(ids)),
	}
	for _, id := range ids {
		response.Couriers = append(response.Couriers, dto.CreatedID{ID: id})
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

func (h *Handler) writeValidationError(w http.ResponseWriter, validationErr *courier.ValidationError) {
	response := dto.CouriersErrorResponse{}
	for _, id := range validationErr.IDs {
		response.ValidationError.Couriers = append(response.ValidationError.Couriers, dto.CreatedID{ID: id})
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
