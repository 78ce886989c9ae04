package awb_pool_upload_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/generated/dto"
	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/service/awbpool"
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
	var uploadDTO dto.AwbPoolUploadRequest
	err := json.NewDecoder(r.Body).Decode(&uploadDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(uploadDTO.Rows) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	uploadedBy := ""
	if uploadDTO.UploadedBy != nil {
		uploadedBy = *uploadDTO.UploadedBy
	}

	summary, err := h.service.UploadPool(r.Context(), uploadDTO.Rows, uploadedBy)
	if err != nil {
		switch {
		case errors.Is(err, awbpool.ErrPoolTooLarge):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AwbPoolUploadResponse{
		Total:   summary.Total,
		Created: summary.Created,
		Updated: summary.Updated,
		Skipped: summary.Skipped,
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
