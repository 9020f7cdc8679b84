package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// TableTokenService signs short-lived room tokens for QR-code ordering. A
// guest scanning the code at a table can place orders against the room
// without an account.
type TableTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTableTokenService(secret string, ttl time.Duration) *TableTokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TableTokenService{secret: []byte(secret), ttl: ttl}
}

// Mint returns a signed token bound to the room number.
func (s *TableTokenService) Mint(roomNumber string) (string, error) {
	claims := jwt.MapClaims{
		"room": roomNumber,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses the token and returns the room number it was minted for.
func (s *TableTokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidTableToken
	}

	room, _ := claims["room"].(string)
	if room == "" {
		return "", domain.ErrInvalidTableToken
	}
	return room, nil
}
