package repository

import (
	"testing"
	"time"

	"phish_trainer/internal/testutil"
	"phish_trainer/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryLookups(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "alice", "secret")

	found, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.UsernameExists("alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepositorySkipsInactive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "bob", "secret")
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := repo.FindByUsername("bob")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.FindByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryEmailUsedByOther(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	alice := testutil.CreateUser(t, db, "alice", "secret")
	bob := testutil.CreateUser(t, db, "bob", "secret")

	used, err := repo.EmailUsedByOther("alice@example.com", bob.ID)
	require.NoError(t, err)
	assert.True(t, used)

	used, err = repo.EmailUsedByOther("alice@example.com", alice.ID)
	require.NoError(t, err)
	assert.False(t, used)
}

func TestUserRepositoryUpdates(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	user := testutil.CreateUser(t, db, "carol", "secret")

	require.NoError(t, repo.UpdateProfile(user.ID, "Carol King", "carol@corp.example", api.LevelAdvanced))
	require.NoError(t, repo.UpdatePassword(user.ID, "new-hash"))
	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(user.ID, now))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol King", got.FullName)
	assert.Equal(t, "carol@corp.example", got.Email)
	assert.Equal(t, api.LevelAdvanced, got.SecurityLevel)
	assert.Equal(t, "new-hash", got.Password)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, now, *got.LastLogin, time.Second)
}
