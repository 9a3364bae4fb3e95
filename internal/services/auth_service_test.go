package services_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/domain"
	"marketplace/internal/services"
)

func TestRegister(t *testing.T) {
	e := newEnv(t)

	u, err := e.auth.Register("  mary   ann ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", u.Username)
	assert.Equal(t, 1, u.ID)

	for _, dup := range []string{"mary ann", "MARY ANN", " Mary   Ann"} {
		_, err := e.auth.Register(dup, "other")
		assert.ErrorIs(t, err, domain.ErrConflict, dup)
	}
	assert.Equal(t, 1, e.repos.Users.Len())

	_, err = e.auth.Register("   ", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = e.auth.Register("joe", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	b, err := os.ReadFile(filepath.Join(e.dir, "users.csv"))
	require.NoError(t, err)
	assert.Equal(t, "user_id,username,password\n1,Mary Ann,secret\n", string(b))
}

func TestLoginAndSessions(t *testing.T) {
	e := newEnv(t)
	alice := e.user(t, "alice")

	s, err := e.auth.Login("ALICE", "pw-alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, s.User.ID)
	assert.NotEmpty(t, s.ID)

	cur, err := e.auth.CurrentUser(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", cur.Username)

	other, err := e.auth.Login("alice", "pw-alice")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)

	e.auth.Logout(s.ID)
	_, err = e.auth.CurrentUser(s.ID)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
	_, err = e.auth.CurrentUser(other.ID)
	assert.NoError(t, err)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	e := newEnv(t)
	e.user(t, "alice")

	_, wrongPw := e.auth.Login("alice", "nope")
	_, noUser := e.auth.Login("zed", "pw-alice")
	require.ErrorIs(t, wrongPw, domain.ErrAuthentication)
	require.ErrorIs(t, noUser, domain.ErrAuthentication)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
	assert.Equal(t, "authentication", domain.Kind(noUser))
}

func TestBcryptPasswords(t *testing.T) {
	e := newEnv(t)
	auth := services.NewAuthService(e.repos.Users, services.BcryptPasswords{Cost: bcrypt.MinCost})

	u, err := auth.Register("dana", "hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.Password, "$2"))
	assert.NotContains(t, u.Password, "hunter2")

	_, err = auth.Login("dana", "hunter2")
	assert.NoError(t, err)
	_, err = auth.Login("dana", "hunter3")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestNewPasswordManager(t *testing.T) {
	pm, err := services.NewPasswordManager("")
	require.NoError(t, err)
	assert.IsType(t, services.PlainPasswords{}, pm)

	pm, err = services.NewPasswordManager(services.SchemeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, services.BcryptPasswords{}, pm)

	_, err = services.NewPasswordManager("md5")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
