package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken represents a signed JWT access token along with its expiry.
// Access tokens are short-lived and carried in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims is the decoded payload of an access token.  IsAdmin is
// advisory: it lets the frontend pick a layout, but admin-only routes
// re-check the admins table before trusting it.
type Claims struct {
	UserID  uint64
	Name    string
	Email   string
	IsAdmin bool
}

var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user.  The payload
// carries {id, name, email, isAdmin, exp, iat}; exp is now plus the TTL
// in minutes.
func NewAccessToken(secret string, userID uint64, name, email string, isAdmin bool, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"id":      userID,
		"name":    name,
		"email":   email,
		"isAdmin": isAdmin,
		"exp":     exp.Unix(),
		"iat":     time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates the signature, signing method and expiry of
// a serialized token and returns its claims.  Expired or tampered tokens
// yield ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	id, ok := mc["id"].(float64)
	if !ok || id <= 0 {
		return Claims{}, ErrInvalidToken
	}
	c := Claims{UserID: uint64(id)}
	if v, ok := mc["name"].(string); ok {
		c.Name = v
	}
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if v, ok := mc["isAdmin"].(bool); ok {
		c.IsAdmin = v
	}
	return c, nil
}
