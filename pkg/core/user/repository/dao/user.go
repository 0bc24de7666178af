package dao

import (
	"book-nook/pkg/core/user/model"
)

type UserRepository interface {
	IsUsernameExists(username string) (bool, error)
	CreateUser(user *model.User) error
	GetByUsername(username string) (model.User, error)
}
