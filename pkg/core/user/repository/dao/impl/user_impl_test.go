package dao

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"book-nook/pkg/core/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return db
}

func TestCreateUserAndLookup(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := model.User{Username: "bob", Password: "$argon2id$hash"}
	require.NoError(t, repo.CreateUser(&user))
	assert.Greater(t, user.ID, int64(0))

	exists, err := repo.IsUsernameExists("bob")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "$argon2id$hash", got.Password)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	first := model.User{Username: "bob", Password: "h1"}
	require.NoError(t, repo.CreateUser(&first))

	// 唯一索引兜底并发注册
	second := model.User{Username: "bob", Password: "h2"}
	assert.ErrorIs(t, repo.CreateUser(&second), ErrDuplicateEntry)
}

func TestGetByUsernameNotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	exists, err := repo.IsUsernameExists("ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}
