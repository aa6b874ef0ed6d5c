package usecase

import (
	"errors"

	"storefront/internal/domain/apperror"
	"storefront/internal/domain/repository/database"
	"storefront/pkg/logger"
)

// repositoryError converts a repository failure into the error shown to callers.
func repositoryError(resource, op string, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return apperror.NotFound(resource)
	case errors.Is(err, database.ErrInvalidFilter):
		return apperror.Validation("filter", err.Error())
	case errors.Is(err, database.ErrDuplicate):
		return apperror.Validationf(resource, "%s already exists", resource)
	}

	logger.Error("repository failure", "resource", resource, "op", op, "err", err)

	return apperror.Storage("failed to "+op+" "+resource, err)
}
