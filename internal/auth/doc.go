// Package auth provides accounts, password hashing and bearer-token
// authentication.
//
// Tokens are HMAC-signed JWTs whose subject is the account email. Mutating
// catalog routes sit behind RequireAuth; reads are public.
//
// # Configuration
//
//	SECRET_KEY=<hex>                   # Generated at start-up if empty
//	ALGORITHM=HS256                    # HS256, HS384 or HS512
//	ACCESS_TOKEN_EXPIRE_MINUTES=30     # Token lifetime
//	AUTH_BCRYPT_COST=12                # bcrypt cost factor
//	AUTH_MAX_LOGIN_ATTEMPTS=5          # Failed logins before lockout
//
// # Usage
//
//	issuer, err := auth.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.TokenExpiry)
//	accounts := auth.NewService(db.DB, cfg.Auth, issuer)
//	authMiddleware := auth.NewMiddleware(accounts)
//	router.POST("/romancistas/", authMiddleware.RequireAuth(), handler)
//
// Extract the caller in handlers:
//
//	account := auth.CurrentAccount(c)
package auth
