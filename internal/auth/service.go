package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/database/accounts"
	"github.com/mrlokans/madr/internal/entities"
	"github.com/mrlokans/madr/internal/utils"
)

// Client-facing messages
const (
	MsgAccountExists     = "conta já consta no MADR"
	MsgAccountNotFound   = "conta não consta no MADR"
	MsgNotAuthorized     = "Não autorizado"
	MsgBadCredentials    = "Email ou senha incorretos"
	MsgInvalidCredential = "Could not validate credentials"
	MsgAccountDeleted    = "Conta deletada com sucesso"
)

var (
	ErrAccountExists     = apperrors.Conflict(MsgAccountExists)
	ErrAccountNotFound   = apperrors.NotFound(MsgAccountNotFound)
	ErrNotAuthorized     = apperrors.Unauthorized(MsgNotAuthorized)
	ErrBadCredentials    = apperrors.BadRequest(MsgBadCredentials)
	ErrInvalidCredential = apperrors.Unauthorized(MsgInvalidCredential)
	ErrUsernameRequired  = apperrors.Validation("username is required")
	ErrEmailRequired     = apperrors.Validation("email is required")
)

// Service handles account registration, maintenance and token issuance.
type Service struct {
	db     *gorm.DB
	config config.Auth
	tokens *TokenIssuer
}

// NewService creates a new account service.
func NewService(db *gorm.DB, cfg config.Auth, tokens *TokenIssuer) *Service {
	return &Service{
		db:     db,
		config: cfg,
		tokens: tokens,
	}
}

// Register creates an account. The username is sanitized, the email is
// stored as given.
func (s *Service) Register(ctx context.Context, username, email, password string) (*entities.Account, error) {
	username = utils.SanitizeName(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, classify(err)
	}

	account := &entities.Account{
		Username: username,
		Email:    email,
		Password: passwordHash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := accounts.NewRepository(tx)

		taken, err := repo.Taken(username, email, 0)
		if err != nil {
			return fmt.Errorf("failed to check existing account: %w", err)
		}
		if taken {
			return ErrAccountExists
		}

		return repo.Create(account)
	})
	if err != nil {
		return nil, classify(err)
	}

	return account, nil
}

// Update replaces username, email and password of targetID. Only the account
// itself may do this.
func (s *Service) Update(ctx context.Context, actorID, targetID uint, username, email, password string) (*entities.Account, error) {
	if actorID != targetID {
		return nil, ErrNotAuthorized
	}

	username = utils.SanitizeName(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, classify(err)
	}

	var account *entities.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := accounts.NewRepository(tx)

		var err error
		account, err = repo.GetByID(targetID)
		if err != nil {
			return err
		}

		taken, err := repo.Taken(username, email, targetID)
		if err != nil {
			return fmt.Errorf("failed to check existing account: %w", err)
		}
		if taken {
			return ErrAccountExists
		}

		account.Username = username
		account.Email = email
		account.Password = passwordHash
		return repo.Update(account)
	})
	if err != nil {
		return nil, classify(err)
	}

	return account, nil
}

// Delete removes targetID. Only the account itself may do this.
func (s *Service) Delete(ctx context.Context, actorID, targetID uint) error {
	if actorID != targetID {
		return ErrNotAuthorized
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := accounts.NewRepository(tx)
		if _, err := repo.GetByID(targetID); err != nil {
			return err
		}
		return repo.Delete(targetID)
	})
	return classify(err)
}

// Login checks credentials and issues a token whose subject is the email.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	account, err := accounts.NewRepository(s.db.WithContext(ctx)).GetByEmail(email)
	if err != nil {
		if database.IsNotFound(err) {
			return Token{}, ErrBadCredentials
		}
		return Token{}, apperrors.Internal(err)
	}

	if err := CheckPassword(password, account.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return Token{}, ErrBadCredentials
		}
		return Token{}, apperrors.Internal(err)
	}

	return s.issue(account)
}

// Refresh issues a fresh token for an already authenticated account.
func (s *Service) Refresh(account *entities.Account) (Token, error) {
	return s.issue(account)
}

func (s *Service) issue(account *entities.Account) (Token, error) {
	token, err := s.tokens.Issue(account.Email)
	if err != nil {
		return Token{}, apperrors.Internal(err)
	}
	return token, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *Service) GetAccountByID(ctx context.Context, id uint) (*entities.Account, error) {
	account, err := accounts.NewRepository(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		return nil, classify(err)
	}
	return account, nil
}

// ResolveToken returns the account a bearer token was issued to. Any failure,
// including a subject that no longer exists, is Unauthorized.
func (s *Service) ResolveToken(ctx context.Context, token string) (*entities.Account, error) {
	email, err := s.tokens.Subject(token)
	if err != nil {
		return nil, ErrInvalidCredential.Wrap(err)
	}

	account, err := accounts.NewRepository(s.db.WithContext(ctx)).GetByEmail(email)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrInvalidCredential.Wrap(err)
		}
		return nil, apperrors.Internal(err)
	}

	return account, nil
}

// classify turns storage errors into service errors. Classified errors pass
// through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case database.IsNotFound(err):
		return ErrAccountNotFound.Wrap(err)
	case database.IsUniqueViolation(err):
		return ErrAccountExists.Wrap(err)
	default:
		return apperrors.Internal(err)
	}
}
