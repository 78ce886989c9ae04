package awb_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/awbpool"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/shipment"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type Handler struct {
	log             handlerLogger
	poolService     PoolService
	shipmentService ShipmentService
}

func New(log handlerLogger, poolService PoolService, shipmentService ShipmentService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:             handlerLog,
		poolService:     poolService,
		shipmentService: shipmentService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var assignDTO dto.AwbAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierType := stringValue(assignDTO.CourierType)
	courierPartner := stringValue(assignDTO.CourierPartner)

	allocation, err := h.poolService.Allocate(
		r.Context(),
		courierType,
		assignDTO.DocID,
		stringValue(assignDTO.StoreID),
		assignDTO.OrderID,
		stringValue(assignDTO.RequestID),
	)
	if err != nil {
		switch {
		case errors.Is(err, awbpool.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, awbpool.ErrAwbUnavailable):
			category, ok := entities.CategoryForCourierType(courierType)
			if !ok {
				category = entities.DefaultCategory
			}
			AwbAllocationFailedTotal.WithLabelValues(category.String()).Inc()
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	update, err := h.shipmentService.AssignConsignment(
		r.Context(),
		assignDTO.DocID,
		allocation.AwbNumber,
		courierPartner,
		courierType,
		actorFromDTO(assignDTO.UpdatedBy),
	)
	if err != nil {
		// заказ не обновился — возвращаем номер в пул, чтобы не протекал
		if _, releaseErr := h.poolService.Release(r.Context(), allocation.AwbNumber, assignDTO.DocID); releaseErr != nil {
			h.log.With(
				logger.NewField("awb_number", allocation.AwbNumber),
				logger.NewField("error", releaseErr),
			).Error("release awb after failed consignment assign")
		}

		switch {
		case errors.Is(err, shipment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AwbAssignResponse{
		AwbNumber:  allocation.AwbNumber,
		Category:   allocation.Category.String(),
		Status:     update.Status.String(),
		AssignedAt: allocation.AssignedAt,
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
	return entities.Actor{
		ID:      stringValue(actorDTO.Id),
		Contact: stringValue(actorDTO.Contact),
		Role:    stringValue(actorDTO.Role),
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
