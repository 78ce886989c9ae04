package shipment_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/shipment"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
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
	var updateDTO dto.ShipmentStatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update, err := h.service.UpdateStatus(r.Context(), updateDTO.DocID, updateDTO.Status, actorFromDTO(updateDTO.UpdatedBy))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidShipmentStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentStatusUpdateResponse{
		DocID:     update.DocID,
		Status:    update.Status.String(),
		UpdatedAt: update.UpdatedAt,
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

func actorFromDTO(actorDTO *dto.ActorDTO) entities.Actor {
	if actorDTO == nil {
		return entities.Actor{}
	}

	actor := entities.Actor{}
	if actorDTO.Id != nil {
		actor.ID = *actorDTO.Id
	}
	if actorDTO.Contact != nil {
		actor.Contact = *actorDTO.Contact
	}
	if actorDTO.Role != nil {
		actor.Role = *actorDTO.Role
	}
	return actor
}
