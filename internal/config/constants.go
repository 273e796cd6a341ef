package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./madr.db"

	// DefaultAlgorithm signs access tokens when ALGORITHM is not set
	DefaultAlgorithm = "HS256"

	// DefaultPageSize and MaxPageSize bound the size query parameter of search endpoints
	DefaultPageSize = 20
	MaxPageSize     = 100
)
