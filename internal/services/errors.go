package services

import (
	"errors"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/database"
)

// Client-facing messages
const (
	MsgAuthorExists   = "romancista já consta no MADR"
	MsgAuthorNotFound = "romancista não encontrado"
	MsgBookExists     = "livro já consta no MADR"
	MsgBookNotFound   = "Livro não consta no MADR"
)

var (
	ErrAuthorExists   = apperrors.Conflict(MsgAuthorExists)
	ErrAuthorNotFound = apperrors.NotFound(MsgAuthorNotFound)
	ErrNameRequired   = apperrors.Validation("nome must not be empty")
	ErrBookExists     = apperrors.Conflict(MsgBookExists)
	ErrBookNotFound   = apperrors.NotFound(MsgBookNotFound)
	ErrTitleRequired  = apperrors.Validation("titulo must not be empty")
)

// classify turns storage errors into service errors. notFound is used for a
// missing row, conflict for a unique violation and ErrAuthorNotFound for a
// dangling author reference.
func classify(err error, notFound, conflict *apperrors.Error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case database.IsNotFound(err):
		return notFound.Wrap(err)
	case database.IsUniqueViolation(err):
		return conflict.Wrap(err)
	case database.IsForeignKeyViolation(err):
		return ErrAuthorNotFound.Wrap(err)
	default:
		return apperrors.Internal(err)
	}
}
