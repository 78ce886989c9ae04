package shipment_status_bulk_post

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/jobstore"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

const jobKind = "bulk_status_update"

type Handler struct {
	log     handlerLogger
	service Service
	jobs    jobstore.Registry
}

func New(log handlerLogger, service Service, jobs jobstore.Registry) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		jobs:    jobs,
	}
}

// ServeHTTP принимает пачку строк и сразу отвечает 202 с идентификатором
// задания. Сама обработка идет в фоне на контексте, отвязанном от запроса:
// разрыв соединения клиентом не обрывает начатое обновление.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bulkDTO dto.BulkStatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(bulkDTO.Rows) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rows := make([]entities.BulkStatusRow, 0, len(bulkDTO.Rows))
	for _, rowDTO := range bulkDTO.Rows {
		rows = append(rows, entities.BulkStatusRow{
			ConsignmentNumber: rowDTO.TrackingNumber,
			RawStatus:         rowDTO.Status,
		})
	}
	actor := actorFromDTO(bulkDTO.UpdatedBy)

	job := h.jobs.Create(jobKind)

	ctx := context.WithoutCancel(r.Context())
	go func() {
		summary := h.service.BulkUpdateStatus(ctx, rows, actor)
		h.jobs.Complete(job.ID, summary)
	}()

	response := dto.JobAcceptedResponse{
		JobID: job.ID,
		State: string(job.State),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
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
