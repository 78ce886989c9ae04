package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrOrderNotFound         = errors.New("order not found")
)
