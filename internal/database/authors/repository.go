// Package authors provides database operations for novelists.
package authors

import (
	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// Exists reports whether an author with the given ID is stored.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// NameTaken reports whether another author already has the (sanitized) name.
func (r *Repository) NameTaken(name string, excludeID uint) (bool, error) {
	query := r.db.Model(&entities.Author{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Update(author *entities.Author) error {
	return r.db.Save(author).Error
}

// Delete removes the author together with every book attributed to them.
func (r *Repository) Delete(id uint) error {
	if err := r.db.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&entities.Author{}, id).Error
}

// Search returns one page of authors whose name contains needle, plus the
// total number of matches. An empty needle matches every author.
func (r *Repository) Search(needle string, page, size int) ([]entities.Author, int64, error) {
	query := r.db.Model(&entities.Author{})
	if needle != "" {
		query = query.Where(database.ContainsClause("name"), database.ContainsPattern(needle))
	}

	var authors []entities.Author
	total, err := database.Paginate(query, page, size, &authors)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}
