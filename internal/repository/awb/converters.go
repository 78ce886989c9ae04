package awb

import "github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"

func ToDomain(e *AwbEntryDB) *entities.AwbEntry {
	if e == nil {
		return nil
	}
	return &entities.AwbEntry{
		Number:          e.Number,
		Category:        entities.AwbCategory(e.Category),
		Assigned:        e.Assigned,
		AssignedAt:      e.AssignedAt,
		ReleasedAt:      e.ReleasedAt,
		AssignedDocID:   e.AssignedDocID,
		AssignedStoreID: e.AssignedStoreID,
		OrderID:         e.OrderID,
		RequestID:       e.RequestID,
		ReleasedByDocID: e.ReleasedByDocID,
		UploadedBy:      e.UploadedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
