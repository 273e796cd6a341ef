package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/madr/internal/auth"
	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/http"
	"github.com/mrlokans/madr/internal/services"
)

// =============================================================================
// Services
// =============================================================================

var _ http.AccountService = (*auth.Service)(nil)
var _ http.AuthorService = (*services.AuthorService)(nil)
var _ http.BookService = (*services.BookService)(nil)

// =============================================================================
// Authentication
// =============================================================================

var _ auth.TokenResolver = (*auth.Service)(nil)
var _ http.LoginLimiter = (*auth.LoginLimiter)(nil)
var _ http.LoginRecorder = (*auth.LoginLimiter)(nil)

// =============================================================================
// Infrastructure
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
