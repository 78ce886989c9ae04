package job_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/jobstore"
	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

type Handler struct {
	log  handlerLogger
	jobs jobstore.Registry
}

func New(log handlerLogger, jobs jobstore.Registry) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:  handlerLog,
		jobs: jobs,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobID"]
	if jobID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	job, ok := h.jobs.Get(jobID)
	if !ok {
		// задание либо не существовало, либо уже вытеснено по TTL
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := dto.JobStatusResponse{
		JobID: job.ID,
		State: string(job.State),
	}
	if job.Error != "" {
		response.Error = &job.Error
	}
	if summary, ok := job.Result.(*entities.BulkStatusSummary); ok && summary != nil {
		summaryDTO := dto.BulkStatusSummaryDTO{
			Processed: summary.Processed,
			Updated:   summary.Updated,
			Failed:    summary.Failed,
		}
		if len(summary.Errors) > 0 {
			errs := summary.Errors
			summaryDTO.Errors = &errs
		}
		response.Summary = &summaryDTO
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
