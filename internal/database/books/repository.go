// Package books provides database operations for the book catalog.
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/entities"
)

// Filter narrows a book search. Zero values mean "no constraint".
type Filter struct {
	Title string
	Year  int
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book by ID.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Taken reports whether another book by the same author has this title.
func (r *Repository) Taken(title string, authorID, excludeID uint) (bool, error) {
	query := r.db.Model(&entities.Book{}).Where("title = ? AND author_id = ?", title, authorID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Update(book *entities.Book) error {
	return r.db.Omit("Author").Save(book).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}

// Search returns one page of books matching filter, plus the total number of
// matches.
func (r *Repository) Search(filter Filter, page, size int) ([]entities.Book, int64, error) {
	query := r.db.Model(&entities.Book{})
	if filter.Title != "" {
		query = query.Where(database.ContainsClause("title"), database.ContainsPattern(filter.Title))
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var books []entities.Book
	total, err := database.Paginate(query, page, size, &books)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}
