package game

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"memeclash/internal/model"
)

// ErrInvalidToken is returned for tokens that fail validation.
var ErrInvalidToken = errors.New("invalid or expired token")

// AuthService mints and validates guest identity tokens. Identity is
// intentionally lightweight: anyone may claim a name and avatar, and the
// rest of the system only cares that the identity is stable for the
// session.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates a new auth service.
func NewAuthService(secret string) *AuthService {
	return &AuthService{jwtSecret: []byte(secret)}
}

// Login mints a guest identity and a token encoding it.
func (s *AuthService) Login(name, avatar string) (*model.GuestLoginResponse, error) {
	if name == "" {
		name = "Anonymous"
	}

	id := "u_" + uuid.New().String()[:8]
	claims := &model.IdentityClaims{
		Name:   name,
		Avatar: avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.GuestLoginResponse{
		Token: signed,
		Identity: model.Identity{
			ID:     id,
			Name:   name,
			Avatar: avatar,
		},
	}, nil
}

// ValidateToken resolves a token into the identity it encodes.
func (s *AuthService) ValidateToken(tokenString string) (model.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.IdentityClaims)
	if !ok || !token.Valid {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{
		ID:     claims.Subject,
		Name:   claims.Name,
		Avatar: claims.Avatar,
	}, nil
}
