package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Manager struct {
	Secret    []byte
	AccessTTL time.Duration
	Issuer    string
	now       func() time.Time
}

func NewManager(secret string, accessTTL time.Duration, issuer string) *Manager {
	if secret == "" {
		return nil
	}
	return &Manager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
		Issuer:    issuer,
	}
}

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (m *Manager) clock() time.Time {
	if m.now != nil {
		return m.now()
	}
	return time.Now()
}

// NewAccessToken signs an HS256 token whose subject is the user id.
func (m *Manager) NewAccessToken(userID, email, role string) (string, error) {
	now := m.clock()
	claims := Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.AccessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

// Parse verifies a token issued by NewAccessToken and returns its claims. No
// route requires a bearer token yet; callers that gate on one verify with Parse.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer), jwt.WithTimeFunc(m.clock))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
