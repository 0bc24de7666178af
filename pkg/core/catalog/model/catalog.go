package model

import (
	"gorm.io/gorm"
)

// Author 作者基础信息
type Author struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Bio  string `gorm:"type:text;not null" json:"bio"`
}

// TableName 定义映射表名
func (Author) TableName() string {
	return "authors"
}

// Book 图书信息，author_id 外键关联 authors 表
type Book struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID int64  `gorm:"not null;index" json:"author_id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	PubYear  string `gorm:"type:varchar(4);not null" json:"pub_year"` // 4位年份字符串，按字典序比较
	Genre    string `gorm:"type:varchar(100);not null" json:"genre"`

	// 仅用于生成外键约束，不参与序列化
	Author Author `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName 定义映射表名
func (Book) TableName() string {
	return "books"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Author{}, &Book{})
}
