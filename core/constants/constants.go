package constants

import "time"

// Database connection pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Admin auth
const (
	AdminTokenCookie = "map_admin_token"
	AdminLoginPath   = "/admin/login"
	TokenExpiry      = 7 * 24 * time.Hour
)

// Read cache
const (
	RedisKeyLocationList = "map:locations:list"
	RedisKeyEventList    = "map:events:list"
	ListCacheTTL         = 60 * time.Second
)

// Cache-Control value for public read endpoints. Shared caches may serve the
// list for a minute and revalidate in the background for five more.
const PublicReadCacheControl = "public, s-maxage=60, stale-while-revalidate=300"
