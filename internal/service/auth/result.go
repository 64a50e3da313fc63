package auth

import "github.com/heartmarshall/quizly-backend/internal/domain"

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "Bearer"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}
