package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/madr/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), "silent")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_MigratesAndPings(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, db.Ping(context.Background()))
	for _, table := range []string{"contas", "romancistas", "livros"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
}

func TestWithConnectionParams(t *testing.T) {
	const defaults = "_foreign_keys=on&_journal=WAL&_busy_timeout=5000&_txlock=immediate"

	tests := []struct {
		in   string
		want string
	}{
		{"./madr.db", "./madr.db?" + defaults},
		{"file:madr.db?cache=shared", "file:madr.db?cache=shared&" + defaults},
		{"./madr.db?_foreign_keys=off", "./madr.db?_foreign_keys=off&_journal=WAL&_busy_timeout=5000&_txlock=immediate"},
		{"./madr.db?_fk=1&_journal_mode=DELETE&_timeout=100", "./madr.db?_fk=1&_journal_mode=DELETE&_timeout=100&_txlock=immediate"},
		{"./madr.db?" + defaults, "./madr.db?" + defaults},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, withConnectionParams(tt.in))
		})
	}
}

func TestNewDatabase_UsesWAL(t *testing.T) {
	db := setupTestDB(t)

	var mode string
	require.NoError(t, db.DB.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Warn, parseLogLevel("bogus"))
}

func TestConstraintErrors(t *testing.T) {
	db := setupTestDB(t)

	author := &entities.Author{Name: "machado de assis"}
	require.NoError(t, db.DB.Create(author).Error)

	t.Run("unique name", func(t *testing.T) {
		err := db.DB.Create(&entities.Author{Name: "machado de assis"}).Error
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
		assert.False(t, IsForeignKeyViolation(err))
	})

	t.Run("unknown author", func(t *testing.T) {
		err := db.DB.Create(&entities.Book{Title: "dom casmurro", Year: 1899, AuthorID: 999}).Error
		require.Error(t, err)
		assert.True(t, IsForeignKeyViolation(err))
		assert.False(t, IsUniqueViolation(err))
	})

	t.Run("missing row", func(t *testing.T) {
		err := db.DB.First(&entities.Author{}, 999).Error
		assert.True(t, IsNotFound(err))
		assert.False(t, IsUniqueViolation(err))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil))
		assert.False(t, IsForeignKeyViolation(nil))
	})
}

func TestPaginate(t *testing.T) {
	db := setupTestDB(t)

	for i := 1; i <= 25; i++ {
		require.NoError(t, db.DB.Create(&entities.Author{Name: fmt.Sprintf("autor %02d", i)}).Error)
	}

	tests := []struct {
		name      string
		page      int
		size      int
		wantLen   int
		wantFirst string
	}{
		{"first page", 1, 10, 10, "autor 01"},
		{"last partial page", 3, 10, 5, "autor 21"},
		{"past the end", 4, 10, 0, ""},
		{"single page", 1, 100, 25, "autor 01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authors []entities.Author
			total, err := Paginate(db.DB.Model(&entities.Author{}), tt.page, tt.size, &authors)

			require.NoError(t, err)
			assert.Equal(t, int64(25), total)
			assert.Len(t, authors, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, authors[0].Name)
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	db := setupTestDB(t)

	var authors []entities.Author
	total, err := Paginate(db.DB.Model(&entities.Author{}), 1, 20, &authors)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, authors)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"100% machado", "1000 machado", "a_b", "axb"} {
		require.NoError(t, db.DB.Create(&entities.Author{Name: name}).Error)
	}

	var names []string
	err := db.DB.Model(&entities.Author{}).
		Where(ContainsClause("name"), ContainsPattern("0%")).
		Pluck("name", &names).Error
	require.NoError(t, err)
	assert.Equal(t, []string{"100% machado"}, names)

	names = nil
	err = db.DB.Model(&entities.Author{}).
		Where(ContainsClause("name"), ContainsPattern("_")).
		Pluck("name", &names).Error
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b"}, names)
}
