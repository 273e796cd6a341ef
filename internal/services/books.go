package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database/authors"
	"github.com/mrlokans/madr/internal/database/books"
	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/utils"
)

// BookFilter narrows a book search. Title is matched as a sanitized
// substring; Year, when non-zero, exactly.
type BookFilter struct {
	Title string
	Year  int
}

// BookService manages the book catalog.
type BookService struct {
	db         *gorm.DB
	pagination config.Pagination
}

func NewBookService(db *gorm.DB, cfg config.Pagination) *BookService {
	return &BookService{db: db, pagination: cfg}
}

// Create adds a book. A duplicate (title, author) is reported before a
// missing author.
func (s *BookService) Create(ctx context.Context, title string, year int, authorID uint) (*entities.Book, error) {
	title = utils.SanitizeName(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	book := &entities.Book{Title: title, Year: year, AuthorID: authorID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)

		taken, err := repo.Taken(title, authorID, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrBookExists
		}

		if err := requireAuthor(tx, authorID); err != nil {
			return err
		}

		return repo.Create(book)
	})
	if err != nil {
		return nil, classify(err, ErrBookNotFound, ErrBookExists)
	}

	return book, nil
}

// Update changes only the supplied fields of a book.
func (s *BookService) Update(ctx context.Context, id uint, update entities.BookUpdate) (*entities.Book, error) {
	if update.IsEmpty() {
		return s.Get(ctx, id)
	}

	if update.Title != nil {
		title := utils.SanitizeName(*update.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		update.Title = &title
	}

	var book *entities.Book
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)

		var err error
		book, err = repo.GetByID(id)
		if err != nil {
			return err
		}

		update.Apply(book)

		if update.Title != nil || update.AuthorID != nil {
			taken, err := repo.Taken(book.Title, book.AuthorID, id)
			if err != nil {
				return err
			}
			if taken {
				return ErrBookExists
			}
		}

		if update.AuthorID != nil {
			if err := requireAuthor(tx, book.AuthorID); err != nil {
				return err
			}
		}

		return repo.Update(book)
	})
	if err != nil {
		return nil, classify(err, ErrBookNotFound, ErrBookExists)
	}

	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return err
		}
		return repo.Delete(id)
	})
	return classify(err, ErrBookNotFound, ErrBookExists)
}

func (s *BookService) Get(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := books.NewRepository(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		return nil, classify(err, ErrBookNotFound, ErrBookExists)
	}
	return book, nil
}

// Search lists books matching every supplied filter.
func (s *BookService) Search(ctx context.Context, filter BookFilter, req PageRequest) (Page[entities.Book], error) {
	req, err := req.normalize(s.pagination)
	if err != nil {
		return Page[entities.Book]{}, err
	}

	items, total, err := books.NewRepository(s.db.WithContext(ctx)).Search(books.Filter{
		Title: utils.SanitizeName(filter.Title),
		Year:  filter.Year,
	}, req.Page, req.Size)
	if err != nil {
		return Page[entities.Book]{}, classify(err, ErrBookNotFound, ErrBookExists)
	}

	return NewPage(items, total, req), nil
}

func requireAuthor(tx *gorm.DB, authorID uint) error {
	exists, err := authors.NewRepository(tx).Exists(authorID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAuthorNotFound
	}
	return nil
}
