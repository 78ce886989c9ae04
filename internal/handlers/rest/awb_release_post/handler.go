package awb_release_post

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
	var releaseDTO dto.AwbReleaseRequest
	err := json.NewDecoder(r.Body).Decode(&releaseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	docID := ""
	if releaseDTO.DocID != nil {
		docID = *releaseDTO.DocID
	}

	release, err := h.service.Release(r.Context(), releaseDTO.AwbNumber, docID)
	if err != nil {
		switch {
		case errors.Is(err, awbpool.ErrAwbRequired):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AwbReleaseResponse{
		AwbNumber:  release.AwbNumber,
		ReleasedAt: release.ReleasedAt,
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
