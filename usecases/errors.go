package usecases

import (
	"errors"

	"storefront/repository"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrInvalidReference = errors.New("invalid reference")
	ErrConflict         = errors.New("conflict")
)
