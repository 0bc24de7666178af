package model

import (
	"gorm.io/gorm"
)

// User 注册用户，密码字段存储 argon2id 哈希，绝不落盘明文
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"password"`
}

// TableName 定义映射表名
func (User) TableName() string {
	return "users"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
