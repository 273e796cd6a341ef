package http

import (
	"context"
	"time"

	"github.com/mrlokans/madr/internal/auth"
	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/services"
)

// This file collects the service interfaces the controllers depend on.

// AccountService registers, maintains and authenticates accounts.
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*entities.Account, error)
	Update(ctx context.Context, actorID, targetID uint, username, email, password string) (*entities.Account, error)
	Delete(ctx context.Context, actorID, targetID uint) error
	Login(ctx context.Context, email, password string) (auth.Token, error)
	Refresh(account *entities.Account) (auth.Token, error)
}

// LoginRecorder is told about every login outcome so it can lock out
// repeated failures.
type LoginRecorder interface {
	RecordFailure(ip, username string) (bool, time.Duration)
	RecordSuccess(ip, username string)
}

// AuthorService manages novelists.
type AuthorService interface {
	Create(ctx context.Context, name string) (*entities.Author, error)
	Update(ctx context.Context, id uint, name string) (*entities.Author, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*entities.Author, error)
	Search(ctx context.Context, name string, req services.PageRequest) (services.Page[entities.Author], error)
}

// BookService manages the book catalog.
type BookService interface {
	Create(ctx context.Context, title string, year int, authorID uint) (*entities.Book, error)
	Update(ctx context.Context, id uint, update entities.BookUpdate) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*entities.Book, error)
	Search(ctx context.Context, filter services.BookFilter, req services.PageRequest) (services.Page[entities.Book], error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
