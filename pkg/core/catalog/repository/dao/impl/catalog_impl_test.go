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

	"book-nook/pkg/core/catalog/model"
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

func mustCreateAuthor(t *testing.T, repo *GormCatalogRepository, name, bio string) model.Author {
	t.Helper()
	author := model.Author{Name: name, Bio: bio}
	require.NoError(t, repo.CreateAuthor(&author))
	return author
}

func mustCreateBook(t *testing.T, repo *GormCatalogRepository, authorID int64, title, year string) model.Book {
	t.Helper()
	book := model.Book{AuthorID: authorID, Title: title, PubYear: year, Genre: "Fiction"}
	require.NoError(t, repo.CreateBook(&book))
	return book
}

func TestCreateAuthorAssignsIncreasingIDs(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	a1 := mustCreateAuthor(t, repo, "Bob", "B")
	a2 := mustCreateAuthor(t, repo, "Alice", "A")

	assert.Greater(t, a1.ID, int64(0))
	assert.Greater(t, a2.ID, a1.ID)
}

func TestGetAuthorNotFound(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	_, err := repo.GetAuthor(42)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestListAuthorsEmptyIsNotNil(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	authors, err := repo.ListAuthors()
	require.NoError(t, err)
	// 序列化为 [] 而不是 null
	assert.NotNil(t, authors)
	assert.Empty(t, authors)
}

func TestDeleteAuthorBlockedByBooks(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	author := mustCreateAuthor(t, repo, "Bob", "B")
	book := mustCreateBook(t, repo, author.ID, "X", "1999")

	assert.ErrorIs(t, repo.DeleteAuthor(author.ID), ErrAuthorHasBooks)

	// 删除关联图书后作者可删除，且随后不可再查到
	require.NoError(t, repo.DeleteBook(book.ID))
	require.NoError(t, repo.DeleteAuthor(author.ID))

	_, err := repo.GetAuthor(author.ID)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestDeleteAuthorNotFound(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	assert.ErrorIs(t, repo.DeleteAuthor(7), ErrAuthorNotFound)
}

func TestCreateBookForeignKeyEnforced(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	// 仓储层外键约束是 Handler 显式检查之外的最后防线
	book := model.Book{AuthorID: 999, Title: "X", PubYear: "1999", Genre: "G"}
	err := repo.CreateBook(&book)
	assert.ErrorIs(t, err, ErrDatabaseInternal)

	books, listErr := repo.ListBooks()
	require.NoError(t, listErr)
	assert.Empty(t, books)
}

func TestListBooksByYearStringComparison(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))
	author := mustCreateAuthor(t, repo, "Bob", "B")

	mustCreateBook(t, repo, author.ID, "Old", "1999")
	mustCreateBook(t, repo, author.ID, "Mid", "2005")
	mustCreateBook(t, repo, author.ID, "New", "2010")

	books, err := repo.ListBooksByYear("2005")
	require.NoError(t, err)
	assert.Len(t, books, 2)

	books, err = repo.ListBooksByYear("2100")
	require.NoError(t, err)
	assert.Empty(t, books)

	// 字典序比较：零填充的4位年份与数值序一致
	books, err = repo.ListBooksByYear("0001")
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestUpdateBook(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))
	author := mustCreateAuthor(t, repo, "Bob", "B")
	book := mustCreateBook(t, repo, author.ID, "X", "1999")

	updated := model.Book{ID: book.ID, AuthorID: author.ID, Title: "Y", PubYear: "2001", Genre: "Drama"}
	require.NoError(t, repo.UpdateBook(&updated))
	assert.Equal(t, "Y", updated.Title)

	got, err := repo.GetBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Y", got.Title)
	assert.Equal(t, "2001", got.PubYear)
	assert.Equal(t, "Drama", got.Genre)
}

func TestUpdateBookNotFound(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))
	author := mustCreateAuthor(t, repo, "Bob", "B")

	missing := model.Book{ID: 404, AuthorID: author.ID, Title: "Y", PubYear: "2001", Genre: "Drama"}
	assert.ErrorIs(t, repo.UpdateBook(&missing), ErrBookNotFound)
}

func TestDeleteBookNotFound(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))

	assert.ErrorIs(t, repo.DeleteBook(404), ErrBookNotFound)
}

func TestAuthorExists(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))
	author := mustCreateAuthor(t, repo, "Bob", "B")

	exists, err := repo.AuthorExists(author.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.AuthorExists(author.ID + 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
