package services

import (
	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/config"
)

var (
	ErrInvalidPage = apperrors.Validation("page must be greater than or equal to 1")
	ErrInvalidSize = apperrors.Validation("size must be between 1 and the maximum page size")
)

// PageRequest selects one page of a search. Zero fields take the defaults:
// page 1 and the configured default size.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalize(cfg config.Pagination) (PageRequest, error) {
	if cfg.DefaultSize <= 0 {
		cfg.DefaultSize = config.DefaultPageSize
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = config.MaxPageSize
	}

	if p.Page == 0 {
		p.Page = 1
	}
	if p.Size == 0 {
		p.Size = cfg.DefaultSize
	}
	if p.Page < 1 {
		return p, ErrInvalidPage
	}
	if p.Size < 1 || p.Size > cfg.MaxSize {
		return p, ErrInvalidSize
	}
	return p, nil
}

// Page is one page of search results.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
	Pages int
}

// NewPage assembles a page; Pages is ceil(total/size) and Items is never nil.
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if total > 0 && req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.Size,
		Pages: pages,
	}
}
