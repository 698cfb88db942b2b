package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenExpired marks a well-formed but expired token, so the client
	// can prompt for a fresh login instead of reporting bad credentials.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken covers every other verification failure, including a
	// subject that no longer resolves to a user.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies bearer tokens against the user store.
type Manager struct {
	secret []byte
	expiry time.Duration
	users  *store.Collection[models.User]
}

// NewManager builds the auth manager.
func NewManager(secret string, expiry time.Duration, users *store.Collection[models.User]) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry, users: users}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token plus the safe user view.
func (m *Manager) Login(email, password string) (string, models.AuthUser, error) {
	users, err := m.users.ReadAll()
	if err != nil {
		return "", models.AuthUser{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return "", models.AuthUser{}, ErrInvalidCredentials
		}
		token, err := m.GenerateToken(u)
		if err != nil {
			return "", models.AuthUser{}, err
		}
		return token, u.Safe(), nil
	}
	return "", models.AuthUser{}, ErrInvalidCredentials
}

// GenerateToken signs an HS256 token for the user.
func (m *Manager) GenerateToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates signature and expiry and re-resolves the subject
// against the user store, so a deleted user's token stops working.
func (m *Manager) VerifyToken(tokenString string) (models.AuthUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AuthUser{}, ErrTokenExpired
		}
		return models.AuthUser{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.AuthUser{}, ErrInvalidToken
	}

	users, err := m.users.ReadAll()
	if err != nil {
		return models.AuthUser{}, err
	}
	for _, u := range users {
		if u.ID == claims.UserID {
			return u.Safe(), nil
		}
	}
	return models.AuthUser{}, ErrInvalidToken
}
