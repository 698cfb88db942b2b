package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/store"
)

func newUserStore(t *testing.T, users ...models.User) *store.Collection[models.User] {
	t.Helper()
	col := store.NewCollection[models.User](t.TempDir(), "users")
	require.NoError(t, col.WriteAll(users))
	return col
}

func adminUser(t *testing.T) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		ID:           "user-1",
		Email:        "admin@vpprealtech.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
}

func TestManager_Login(t *testing.T) {
	user := adminUser(t)
	m := NewManager("test-secret", time.Hour, newUserStore(t, user))

	token, authUser, err := m.Login("admin@vpprealtech.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, authUser.ID)
	assert.Equal(t, models.RoleAdmin, authUser.Role)
}

func TestManager_LoginRejectsBadCredentials(t *testing.T) {
	m := NewManager("test-secret", time.Hour, newUserStore(t, adminUser(t)))

	// Unknown email and wrong password fail identically
	_, _, err := m.Login("nobody@vpprealtech.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = m.Login("admin@vpprealtech.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_TokenRoundtrip(t *testing.T) {
	user := adminUser(t)
	m := NewManager("test-secret", time.Hour, newUserStore(t, user))

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	authUser, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authUser.ID)
	assert.Equal(t, user.Email, authUser.Email)
}

func TestManager_VerifyExpiredToken(t *testing.T) {
	user := adminUser(t)
	m := NewManager("test-secret", -time.Minute, newUserStore(t, user))

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	user := adminUser(t)
	users := newUserStore(t, user)

	issuer := NewManager("secret-a", time.Hour, users)
	verifier := NewManager("secret-b", time.Hour, users)

	token, err := issuer.GenerateToken(user)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, newUserStore(t))
	_, err := m.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyDeletedUser(t *testing.T) {
	user := adminUser(t)
	users := newUserStore(t, user)
	m := NewManager("test-secret", time.Hour, users)

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	// Token stops working once the user record is gone
	require.NoError(t, users.WriteAll(nil))
	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
