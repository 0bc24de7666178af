package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"book-nook/pkg/core/user/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateEntry   = errors.New("duplicate user entry")
	ErrDatabaseInternal = errors.New("database internal error")
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Check username existence
func (r *GormUserRepository) IsUsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: failed to check username", wrapGormError(err))
	}
	return count > 0, nil
}

// Create new user, unique index on username is the last line of defense
// against concurrent registration of the same name
func (r *GormUserRepository) CreateUser(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: user creation failed", wrapGormError(err))
	}
	return nil
}

// GetByUsername 按用户名查询，登录时取回密码哈希与用户ID
func (r *GormUserRepository) GetByUsername(username string) (model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.User{}, ErrUserNotFound
	case err != nil:
		return model.User{}, fmt.Errorf("%w: user query failed", wrapGormError(err))
	default:
		return user, nil
	}
}

// Error handling utils
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func wrapGormError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1048, 1044, 1146: // Common MySQL operation errors
			return ErrDatabaseInternal
		}
	}

	if errors.Is(err, gorm.ErrInvalidDB) || errors.Is(err, gorm.ErrInvalidTransaction) {
		return ErrDatabaseInternal
	}

	// 兜底处理：附加原始错误信息
	return fmt.Errorf("%w: %v", ErrDatabaseInternal, err)
}
