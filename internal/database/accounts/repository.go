// Package accounts provides database operations for API accounts.
//
// # Usage
//
//	repo := accounts.NewRepository(tx)
//	account, err := repo.GetByEmail(email)
package accounts

import (
	"gorm.io/gorm"

	"github.com/mrlokans/madr/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository. db is usually a
// transaction opened by the caller.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(account *entities.Account) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an account by ID.
func (r *Repository) GetByID(id uint) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByEmail retrieves an account by its exact email.
func (r *Repository) GetByEmail(email string) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Taken reports whether another account already uses username or email.
// excludeID skips the account being updated; pass 0 on create.
func (r *Repository) Taken(username, email string, excludeID uint) (bool, error) {
	query := r.db.Model(&entities.Account{}).Where("(username = ? OR email = ?)", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update writes every column of account.
func (r *Repository) Update(account *entities.Account) error {
	return r.db.Save(account).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Account{}, id).Error
}
