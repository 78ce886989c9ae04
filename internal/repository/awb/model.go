package awb

import "time"

type AwbEntryDB struct {
	Number          string
	Category        string
	Assigned        bool
	AssignedAt      *time.Time
	ReleasedAt      *time.Time
	AssignedDocID   string
	AssignedStoreID string
	OrderID         string
	RequestID       string
	ReleasedByDocID string
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
