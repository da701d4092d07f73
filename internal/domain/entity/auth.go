package entity

// TokenTypeBearer is the token_type reported for every issued access token.
const TokenTypeBearer = "bearer"

// AccessToken is a signed, self-contained credential handed out at login.
// It is never persisted.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn int64 // seconds
}
