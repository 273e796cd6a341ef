// Package interfaces documents the abstractions that connect the layers of
// the catalog API.
//
// # Interface Categories
//
// ## Service Interfaces
//
// HTTP controllers depend on narrow interfaces declared next to them in
// internal/http/stores.go:
//
//   - AccountService: register, update, delete, login and refresh (auth.Service)
//   - AuthorService: author CRUD and name search (services.AuthorService)
//   - BookService: book CRUD and filtered search (services.BookService)
//
// ## Authentication Interfaces
//
//   - TokenResolver: maps a bearer token to an account (internal/auth/middleware.go)
//   - LoginLimiter / LoginRecorder: login lockout hooks (internal/http/config.go)
//
// ## Infrastructure Interfaces
//
//   - Pinger: database liveness for /health (internal/http/stores.go)
//
// # Adding a New Catalog Resource
//
//  1. Add the entity in internal/entities/ and register it in
//     database.NewDatabase's AutoMigrate call
//
//  2. Create a repository sub-package in internal/database/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add a service in internal/services/ that opens a transaction per
//     operation and builds repositories on it
//
//  4. Declare the interface the controller needs in internal/http/stores.go,
//     write the controller and register its routes in router.go
//
//  5. Add a compile-time check:
//
//     var _ http.PublisherService = (*services.PublisherService)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current list.
package interfaces
