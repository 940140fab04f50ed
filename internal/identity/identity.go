// Package identity reads the caller identity issued by the external identity
// provider and keeps the per-user metadata the marketplace writes back.
package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type Identity struct {
	ID         string
	Email      string
	ImageURL   string
	HasProfile bool
}

type Claims struct {
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	HasProfile bool   `json:"has_profile"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Parse(tokenString string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &Identity{
		ID:         claims.Subject,
		Email:      claims.Email,
		ImageURL:   claims.ImageURL,
		HasProfile: claims.HasProfile,
	}, nil
}

// Sign is used by tests and local tooling to mint tokens the verifier accepts.
func (v *Verifier) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
