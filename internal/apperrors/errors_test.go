package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"conflict", Conflict("dup"), KindConflict},
		{"not found", NotFound("missing"), KindNotFound},
		{"unauthorized", Unauthorized("nope"), KindUnauthorized},
		{"bad request", BadRequest("bad"), KindBadRequest},
		{"validation", Validation("shape"), KindValidation},
		{"wrapped conflict", fmt.Errorf("create: %w", Conflict("dup")), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
		{"internal", Internal(errors.New("db down")), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_IsSentinel(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("romancista não encontrado"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	err := Conflict("livro já consta no MADR").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "livro já consta no MADR", MessageOf(err))
}

func TestMessageOf_HidesUnclassifiedErrors(t *testing.T) {
	assert.Equal(t, "internal server error", MessageOf(errors.New("secret detail")))
	assert.Equal(t, "internal server error", MessageOf(Internal(errors.New("secret detail"))))
}

func TestIsKind_Nil(t *testing.T) {
	assert.False(t, IsKind(nil, KindInternal))
}
