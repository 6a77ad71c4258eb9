// Package auth implements the DevHub session model: signed, time-bounded
// session tokens carrying the account id and role, bcrypt password hashing,
// and the session cookie configuration.
//
// Validation is stateless: a token is accepted on signature and expiry
// alone, so the role embedded at issuance stays authoritative until the
// token expires even if the account's role changes in the meantime. There
// is no revocation list; logout only clears the client cookie.
package auth

import (
	"errors"
	"time"

	"github.com/devhub/backend/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token claim set: registered claims plus the
// account id and the role copied from the account at issuance time.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// Identity is the authenticated identity extracted from a valid token.
type Identity struct {
	UserID string
	Role   string
}

// GenerateToken issues an HS256-signed session token for the given account
// id and role, expiring validityDuration from now.
func GenerateToken(userID, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a session token and
// returns the embedded identity. Expired tokens yield
// common.ErrorTokenExpired; any other defect (bad signature, malformed
// token, wrong algorithm) yields common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return &Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
