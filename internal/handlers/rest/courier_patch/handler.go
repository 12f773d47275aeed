package courier_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// courier_id сменить нельзя, любое постороннее поле - ошибка целиком.
	if err := checkKnownFields(raw); err != nil {
		h.writeError(w, err)
		return
	}

	updateDTO, err := decodeUpdate(raw)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := entities.CourierModify{
		ID:           id,
		Transport:    (*entities.TransportType)(updateDTO.CourierType),
		Regions:      updateDTO.Regions,
		WorkingHours: updateDTO.WorkingHours,
	}

	updated, err := h.service.UpdateCourier(r.Context(), courierModify)
	if err != nil {
		h.writeError(w, err)
		return
	}

	hours := make([]string, 0, len(updated.WorkingHours))
	for _, interval := range updated.WorkingHours {
		hours = append(hours, interval.String())
	}

	response := dto.Courier{
		CourierID:    updated.ID,
		CourierType:  updated.Transport.String(),
		Regions:      updated.Regions,
		WorkingHours: hours,
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

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, courier.ErrUnknownField),
		errors.Is(err, courier.ErrMissingRequiredFields),
		errors.Is(err, courier.ErrInvalidCourierID),
		errors.Is(err, courier.ErrInvalidTransport),
		errors.Is(err, courier.ErrInvalidRegions),
		errors.Is(err, courier.ErrInvalidWorkingHours):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, courier.ErrCourierNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func checkKnownFields(raw map[string]json.RawMessage) error {
	for key := range raw {
		switch key {
		case "courier_type", "regions", "working_hours":
		default:
			return courier.ErrUnknownField
		}
	}
	return nil
}

func decodeUpdate(raw map[string]json.RawMessage) (*dto.CourierUpdate, error) {
	body, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var updateDTO dto.CourierUpdate
	if err := json.Unmarshal(body, &updateDTO); err != nil {
		return nil, err
	}
	return &updateDTO, nil
}
