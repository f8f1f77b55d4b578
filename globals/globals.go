package globals

import (
	"context"
	"os"
)

// JwtSecret signs the admin session cookie. There is no development
// fallback: with SESSION_SECRET unset, login and the admin gate refuse to
// operate.
var JwtSecret = []byte(os.Getenv("SESSION_SECRET"))

// Context keys
type ContextKey string

const SessionIDKey ContextKey = "sessionId"

var Ctx = context.Background()
