package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database"
)

var testPagination = config.Pagination{DefaultSize: 20, MaxSize: 100}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "services.db"), "silent")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.DB
}

func setupServices(t *testing.T) (*AuthorService, *BookService) {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthorService(db, testPagination), NewBookService(db, testPagination)
}
