package awbpool

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrAwbRequired — пустой трек-номер после нормализации.
	ErrAwbRequired = errors.New("awb_required")

	// ErrAwbUnavailable — в запрошенной категории нет свободных номеров.
	// Это штатный бизнес-исход при исчерпании пула, а не сбой системы.
	ErrAwbUnavailable = errors.New("awb_unavailable")

	// ErrPoolTooLarge — дедуплицированная загрузка превышает лимит пула.
	ErrPoolTooLarge = errors.New("awb_pool_too_large")

	// ErrAwbNotFound — запись пула не найдена.
	ErrAwbNotFound = errors.New("awb not found")
)
