package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/entities"
)

func TestClassify_StoreErrors(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&entities.Account{Username: "alice", Email: "alice@example.com", Password: "x"}).Error)

	duplicateEmail := db.Create(&entities.Account{Username: "bob", Email: "alice@example.com", Password: "x"}).Error
	duplicateUsername := db.Create(&entities.Account{Username: "alice", Email: "other@example.com", Password: "x"}).Error
	missingRow := db.First(&entities.Account{}, 999).Error

	tests := []struct {
		name        string
		err         error
		wantKind    apperrors.Kind
		wantMessage string
	}{
		{"unique email", duplicateEmail, apperrors.KindConflict, MsgAccountExists},
		{"unique username", duplicateUsername, apperrors.KindConflict, MsgAccountExists},
		{"record not found", missingRow, apperrors.KindNotFound, MsgAccountNotFound},
		{"anything else", errors.New("disk full"), apperrors.KindInternal, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			classified := classify(tt.err)

			assert.Equal(t, tt.wantKind, apperrors.KindOf(classified))
			assert.Equal(t, tt.wantMessage, apperrors.MessageOf(classified))
		})
	}
}

func TestService_ConcurrentRegistrationsConflict(t *testing.T) {
	svc, _ := setupService(t)

	const writers = 16
	start := make(chan struct{})
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			<-start
			_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
			errs <- err
		}()
	}
	close(start)

	created := 0
	for i := 0; i < writers; i++ {
		err := <-errs
		if err == nil {
			created++
			continue
		}
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err), err.Error())
	}
	assert.Equal(t, 1, created)
}
