package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	coremodel "book-nook/pkg/core/catalog/model"
	"book-nook/pkg/core/catalog/repository/dao"
	daoimpl "book-nook/pkg/core/catalog/repository/dao/impl"
	"book-nook/pkg/web/model"
)

type BookHandler struct {
	Catalog dao.CatalogRepository
}

func NewBookHandler(catalog dao.CatalogRepository) *BookHandler {
	return &BookHandler{Catalog: catalog}
}

func (h *BookHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.BookReq
	if err := c.BindAndValidate(&req); err != nil ||
		req.AuthorID == 0 || req.Title == "" || req.PubYear == "" || req.Genre == "" {
		respondError(c, 400, "Please enter a author id, title, publication year and genre for the book")
		return
	}

	// 显式校验作者存在，不只依赖外键约束
	exists, err := h.Catalog.AuthorExists(req.AuthorID)
	if err != nil {
		hlog.CtxErrorf(ctx, "check author failed: %v", err)
		respondError(c, 500, "Failed to create a book")
		return
	}
	if !exists {
		respondError(c, 400, "Author id does not exist")
		return
	}

	book := coremodel.Book{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		PubYear:  req.PubYear,
		Genre:    req.Genre,
	}
	if err := h.Catalog.CreateBook(&book); err != nil {
		hlog.CtxErrorf(ctx, "create book failed: %v", err)
		respondError(c, 500, "Failed to create a book")
		return
	}

	c.JSON(200, book)
}

func (h *BookHandler) List(ctx context.Context, c *app.RequestContext) {
	books, err := h.Catalog.ListBooks()
	if err != nil {
		hlog.CtxErrorf(ctx, "list books failed: %v", err)
		respondError(c, 500, "Failed to fetch books")
		return
	}

	c.JSON(200, books)
}

// Get 同时承载按ID查询与按年份过滤两种语义：
// 4位数字参数视为出版年份（pub_year 固定为4位年份字符串），
// 其余参数按图书ID处理
func (h *BookHandler) Get(ctx context.Context, c *app.RequestContext) {
	param := c.Param("id")
	if isYearParam(param) {
		h.listByYear(ctx, c, param)
		return
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		respondError(c, 404, "Cannot find book with that id")
		return
	}

	book, err := h.Catalog.GetBook(id)
	switch {
	case errors.Is(err, daoimpl.ErrBookNotFound):
		respondError(c, 404, "Cannot find book with that id")
	case err != nil:
		hlog.CtxErrorf(ctx, "get book failed: %v", err)
		respondError(c, 500, "Failed to fetch book")
	default:
		c.JSON(200, book)
	}
}

func (h *BookHandler) listByYear(ctx context.Context, c *app.RequestContext, year string) {
	books, err := h.Catalog.ListBooksByYear(year)
	if err != nil {
		hlog.CtxErrorf(ctx, "list books by year failed: %v", err)
		respondError(c, 500, "Failed to fetch books")
		return
	}
	if len(books) == 0 {
		respondError(c, 404, "No books found for that publication year or later")
		return
	}

	c.JSON(200, books)
}

func (h *BookHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404, "Book not found")
		return
	}

	var req model.BookReq
	if err := c.BindAndValidate(&req); err != nil ||
		req.AuthorID == 0 || req.Title == "" || req.PubYear == "" || req.Genre == "" {
		respondError(c, 400, "Please enter a author id, title, publication year and genre for the book")
		return
	}

	// 更新不重新校验作者存在性，悬空的 author_id 由外键约束兜底
	book := coremodel.Book{
		ID:       id,
		AuthorID: req.AuthorID,
		Title:    req.Title,
		PubYear:  req.PubYear,
		Genre:    req.Genre,
	}
	err = h.Catalog.UpdateBook(&book)
	switch {
	case errors.Is(err, daoimpl.ErrBookNotFound):
		respondError(c, 404, "Book not found")
	case err != nil:
		hlog.CtxErrorf(ctx, "update book failed: %v", err)
		respondError(c, 500, "Failed to update book information")
	default:
		c.JSON(200, book)
	}
}

func (h *BookHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404, "Cannot find book with that id")
		return
	}

	err = h.Catalog.DeleteBook(id)
	switch {
	case errors.Is(err, daoimpl.ErrBookNotFound):
		respondError(c, 404, "Cannot find book with that id")
	case err != nil:
		hlog.CtxErrorf(ctx, "delete book failed: %v", err)
		respondError(c, 500, "Failed to delete book")
	default:
		c.JSON(200, model.SuccessRes{Success: "Book deleted"})
	}
}

// 出版年份固定为4位数字字符串，其它形式一律按ID处理
func isYearParam(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
