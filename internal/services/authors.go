package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database/authors"
	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/utils"
)

// AuthorService manages novelists. Names are sanitized before they are
// stored or compared.
type AuthorService struct {
	db         *gorm.DB
	pagination config.Pagination
}

func NewAuthorService(db *gorm.DB, cfg config.Pagination) *AuthorService {
	return &AuthorService{db: db, pagination: cfg}
}

func (s *AuthorService) Create(ctx context.Context, name string) (*entities.Author, error) {
	name = utils.SanitizeName(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	author := &entities.Author{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		taken, err := repo.NameTaken(name, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrAuthorExists
		}

		return repo.Create(author)
	})
	if err != nil {
		return nil, classify(err, ErrAuthorNotFound, ErrAuthorExists)
	}

	return author, nil
}

// Update renames an author. Renaming to the current name is allowed.
func (s *AuthorService) Update(ctx context.Context, id uint, name string) (*entities.Author, error) {
	name = utils.SanitizeName(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var author *entities.Author
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		var err error
		author, err = repo.GetByID(id)
		if err != nil {
			return err
		}

		taken, err := repo.NameTaken(name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrAuthorExists
		}

		author.Name = name
		return repo.Update(author)
	})
	if err != nil {
		return nil, classify(err, ErrAuthorNotFound, ErrAuthorExists)
	}

	return author, nil
}

// Delete removes an author and all of their books.
func (s *AuthorService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)
		if _, err := repo.GetByID(id); err != nil {
			return err
		}
		return repo.Delete(id)
	})
	return classify(err, ErrAuthorNotFound, ErrAuthorExists)
}

func (s *AuthorService) Get(ctx context.Context, id uint) (*entities.Author, error) {
	author, err := authors.NewRepository(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		return nil, classify(err, ErrAuthorNotFound, ErrAuthorExists)
	}
	return author, nil
}

// Search finds authors whose sanitized name contains the sanitized needle.
func (s *AuthorService) Search(ctx context.Context, name string, req PageRequest) (Page[entities.Author], error) {
	req, err := req.normalize(s.pagination)
	if err != nil {
		return Page[entities.Author]{}, err
	}

	items, total, err := authors.NewRepository(s.db.WithContext(ctx)).
		Search(utils.SanitizeName(name), req.Page, req.Size)
	if err != nil {
		return Page[entities.Author]{}, classify(err, ErrAuthorNotFound, ErrAuthorExists)
	}

	return NewPage(items, total, req), nil
}
