// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (FKs, WAL, busy timeout), migrations
//	├── errors.go        # Constraint violation classification
//	├── pagination.go    # Count + page queries, LIKE escaping
//	├── accounts/        # Account CRUD and uniqueness checks
//	├── authors/         # Author CRUD and name search
//	└── books/           # Book CRUD and filtered search
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over a *gorm.DB. Services build
// repositories on the transaction they open, so every step of an operation
// shares one transaction:
//
//	db, err := database.NewDatabase("./madr.db", "warn")
//
//	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
//		repo := authors.NewRepository(tx)
//		taken, err := repo.NameTaken(name, 0)
//		...
//	})
//
// # Errors
//
// Repositories return GORM and driver errors unchanged. Callers classify them
// with IsNotFound, IsUniqueViolation and IsForeignKeyViolation.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/publishers/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the entity in NewDatabase's AutoMigrate call
package database
