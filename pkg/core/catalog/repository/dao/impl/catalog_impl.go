package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"book-nook/pkg/core/catalog/model"
)

var (
	ErrAuthorNotFound   = errors.New("author not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrAuthorHasBooks   = errors.New("author has books associated with them")
	ErrDatabaseInternal = errors.New("database internal error")
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) CreateAuthor(author *model.Author) error {
	if err := r.db.Create(author).Error; err != nil {
		return fmt.Errorf("%w: author creation failed", wrapGormError(err))
	}
	return nil
}

func (r *GormCatalogRepository) ListAuthors() ([]model.Author, error) {
	authors := make([]model.Author, 0)
	if err := r.db.Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list authors", wrapGormError(err))
	}
	return authors, nil
}

func (r *GormCatalogRepository) GetAuthor(id int64) (model.Author, error) {
	var author model.Author
	err := r.db.First(&author, id).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Author{}, ErrAuthorNotFound
	case err != nil:
		return model.Author{}, fmt.Errorf("%w: author query failed", wrapGormError(err))
	default:
		return author, nil
	}
}

// DeleteAuthor 删除前检查关联图书，检查与删除在同一事务内完成，
// 避免并发创建图书时产生先检查后删除的窗口
func (r *GormCatalogRepository) DeleteAuthor(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var author model.Author
		if err := tx.First(&author, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAuthorNotFound
			}
			return fmt.Errorf("%w: author query failed", wrapGormError(err))
		}

		var count int64
		if err := tx.Model(&model.Book{}).Where("author_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: book count failed", wrapGormError(err))
		}
		if count > 0 {
			return ErrAuthorHasBooks
		}

		if err := tx.Delete(&model.Author{}, id).Error; err != nil {
			return fmt.Errorf("%w: author deletion failed", wrapGormError(err))
		}
		return nil
	})
}

func (r *GormCatalogRepository) AuthorExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Author{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: failed to check author", wrapGormError(err))
	}
	return count > 0, nil
}

func (r *GormCatalogRepository) CreateBook(book *model.Book) error {
	// Omit 关联字段，只写 books 行本身
	if err := r.db.Omit(clause.Associations).Create(book).Error; err != nil {
		return fmt.Errorf("%w: book creation failed", wrapGormError(err))
	}
	return nil
}

func (r *GormCatalogRepository) ListBooks() ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list books", wrapGormError(err))
	}
	return books, nil
}

// ListBooksByYear 按出版年份过滤，pub_year 为4位年份字符串，
// 按字典序比较（与数值比较对零填充年份等价）
func (r *GormCatalogRepository) ListBooksByYear(year string) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.Where("pub_year >= ?", year).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list books by year", wrapGormError(err))
	}
	return books, nil
}

func (r *GormCatalogRepository) GetBook(id int64) (model.Book, error) {
	var book model.Book
	err := r.db.First(&book, id).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Book{}, ErrBookNotFound
	case err != nil:
		return model.Book{}, fmt.Errorf("%w: book query failed", wrapGormError(err))
	default:
		return book, nil
	}
}

// UpdateBook 全字段更新，未命中任何行时返回 ErrBookNotFound
func (r *GormCatalogRepository) UpdateBook(book *model.Book) error {
	result := r.db.Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]interface{}{
			"author_id": book.AuthorID,
			"title":     book.Title,
			"pub_year":  book.PubYear,
			"genre":     book.Genre,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: book update failed", wrapGormError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}

	if err := r.db.First(book, book.ID).Error; err != nil {
		return fmt.Errorf("%w: book reload failed", wrapGormError(err))
	}
	return nil
}

func (r *GormCatalogRepository) DeleteBook(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book model.Book
		if err := tx.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return fmt.Errorf("%w: book query failed", wrapGormError(err))
		}

		if err := tx.Delete(&model.Book{}, id).Error; err != nil {
			return fmt.Errorf("%w: book deletion failed", wrapGormError(err))
		}
		return nil
	})
}

// Error handling utils
func wrapGormError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1048, 1044, 1146: // Common MySQL operation errors
			return ErrDatabaseInternal
		}
	}

	if errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrDatabaseInternal
	}

	// 兜底处理：附加原始错误信息
	return fmt.Errorf("%w: %v", ErrDatabaseInternal, err)
}
