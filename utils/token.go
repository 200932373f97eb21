package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The game token binds a comment or payment submission to the game page that
// rendered the form, instead of relying only on session scratch state that
// concurrent tabs can overwrite.

const gameTokenTTL = 30 * time.Minute

type gameTokenClaims struct {
	GameID uint `json:"gid"`
	jwt.RegisteredClaims
}

// SignGameToken issues an HS256 token carrying the game id.
func SignGameToken(gameID uint, secret string) (string, error) {
	claims := gameTokenClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(gameID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(gameTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseGameToken verifies the signature and expiry and returns the game id.
func ParseGameToken(tokenString, secret string) (uint, error) {
	claims := &gameTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.GameID == 0 {
		return 0, fmt.Errorf("invalid game token")
	}
	return claims.GameID, nil
}
