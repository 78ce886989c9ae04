package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidShipmentStatus — статус не распознан нормализацией.
	// Запрос отклоняется, молчаливого дефолта нет.
	ErrInvalidShipmentStatus = errors.New("invalid_shipment_status")

	ErrOrderNotFound = errors.New("order not found")
)
