package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpired means the signature checked out but the token is past exp.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers bad signatures and wrong signing methods.
	ErrInvalid = errors.New("invalid token")
	// ErrMalformed means the string is not a token at all.
	ErrMalformed = errors.New("malformed token")
)

// Claims carried by every issued token. Subject is the username.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 tokens with a shared symmetric key.
// Safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue signs a token for subject with the given lifetime.
func (c *Codec) Issue(subject string, userID uint, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse verifies signature and expiry and returns the claims. A token
// that fails signature verification never yields claims.
func (c *Codec) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return c.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrMalformed
	case err != nil, tkn == nil, !tkn.Valid:
		return nil, ErrInvalid
	}
	return &claims, nil
}

// Subject returns the verified subject of a token, or "" when the token
// cannot be verified. Claims are never read from unverified tokens, not
// even for logging.
func (c *Codec) Subject(tokenStr string) string {
	claims, err := c.Parse(tokenStr)
	if err != nil {
		return ""
	}
	return claims.Subject
}
