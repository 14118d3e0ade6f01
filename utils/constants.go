// File: utils/constants.go
package utils

import "time"

// RevokedTokenPrefix is the prefix used for Redis token-revocation keys.
const RevokedTokenPrefix = "revoked:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute
