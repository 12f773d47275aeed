package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"slasty/internal/dto"
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

	info, err := h.service.GetCourierInfo(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	hours := make([]string, 0, len(info.Courier.WorkingHours))
	for _, interval := range info.Courier.WorkingHours {
		hours = append(hours, interval.String())
	}

	response := dto.CourierInfo{
		CourierID:    info.Courier.ID,
		CourierType:  info.Courier.Transport.String(),
		Regions:      info.Courier.Regions,
		WorkingHours: hours,
		Rating:       info.Rating,
		Earnings:     info.Earnings,
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
