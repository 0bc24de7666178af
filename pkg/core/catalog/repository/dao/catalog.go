package dao

import (
	"book-nook/pkg/core/catalog/model"
)

// CatalogRepository 作者与图书的存储访问接口
type CatalogRepository interface {
	CreateAuthor(author *model.Author) error
	ListAuthors() ([]model.Author, error)
	GetAuthor(id int64) (model.Author, error)
	// DeleteAuthor 在同一事务内完成"是否有关联图书"检查与删除
	DeleteAuthor(id int64) error
	AuthorExists(id int64) (bool, error)

	CreateBook(book *model.Book) error
	ListBooks() ([]model.Book, error)
	ListBooksByYear(year string) ([]model.Book, error) // pub_year >= year，字符串比较
	GetBook(id int64) (model.Book, error)
	UpdateBook(book *model.Book) error
	DeleteBook(id int64) error
}
