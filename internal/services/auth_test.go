package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	db := newTestDB(t)

	user, err := Register(db, RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.test",
		Password: "plaintext",
		Phone:    "0712345678",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleRegular, user.Role)
	assert.NotEqual(t, "plaintext", user.Password, "password must be stored hashed")
	assert.NotEmpty(t, user.Password)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	db := newTestDB(t)

	first, err := Register(db, RegisterInput{Name: "A", Email: "dup@example.test", Password: "pw1"})
	require.NoError(t, err)

	_, err = Register(db, RegisterInput{Name: "B", Email: "dup@example.test", Password: "pw2"})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// the first registration is untouched
	got, err := GetUser(db, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestRegister_InvalidRole(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, RegisterInput{Name: "A", Email: "r@example.test", Password: "pw", Role: "Superuser"})
	require.Error(t, err)
	assert.Equal(t, apperr.BadRequest, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "bob@example.test")

	t.Run("correct credentials", func(t *testing.T) {
		user, err := Login(db, "bob@example.test", "s3cret-pw")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.test", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := Login(db, "bob@example.test", "wrong")
		require.Error(t, err)
		assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := Login(db, "nobody@example.test", "s3cret-pw")
		require.Error(t, err)
		assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	})
}
