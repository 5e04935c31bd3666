package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CacheClaims is the continuation token issued after every accepted beacon.
// A well-behaved client echoes it back so repeat requests can skip the
// website and session lookups.
type CacheClaims struct {
	WebsiteID string `json:"websiteId"`
	SessionID string `json:"sessionId"`
	VisitID   string `json:"visitId"`
	// IssuedAt is the visit start in epoch seconds, distinct from the
	// token's own iat claim.
	IssuedAt int64 `json:"issuedAt"`
	jwt.RegisteredClaims
}

// EncodeCache signs the claims into a self-contained token.
func EncodeCache(claims *CacheClaims, key []byte) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign cache token: %w", err)
	}

	return tokenString, nil
}

// DecodeCache verifies and unpacks a continuation token. It returns nil for
// anything that cannot be trusted: bad signature, wrong key, malformed
// structure, wrong signing method. Callers treat nil exactly like "no cache
// present" and fall through to the full lookup path.
func DecodeCache(tokenString string, key []byte) *CacheClaims {
	if tokenString == "" {
		return nil
	}

	claims := &CacheClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	if claims.WebsiteID == "" || claims.SessionID == "" || claims.VisitID == "" {
		return nil
	}

	return claims
}
