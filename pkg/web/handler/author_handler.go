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

type AuthorHandler struct {
	Catalog dao.CatalogRepository
}

func NewAuthorHandler(catalog dao.CatalogRepository) *AuthorHandler {
	return &AuthorHandler{Catalog: catalog}
}

func (h *AuthorHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.AuthorReq
	if err := c.BindAndValidate(&req); err != nil || req.Name == "" || req.Bio == "" {
		respondError(c, 400, "Please enter a name and bio for the author")
		return
	}

	author := coremodel.Author{Name: req.Name, Bio: req.Bio}
	if err := h.Catalog.CreateAuthor(&author); err != nil {
		hlog.CtxErrorf(ctx, "create author failed: %v", err)
		respondError(c, 500, "Failed to create author")
		return
	}

	// 返回包含生成ID的完整记录
	c.JSON(200, author)
}

func (h *AuthorHandler) List(ctx context.Context, c *app.RequestContext) {
	authors, err := h.Catalog.ListAuthors()
	if err != nil {
		hlog.CtxErrorf(ctx, "list authors failed: %v", err)
		respondError(c, 500, "Failed to fetch authors")
		return
	}

	c.JSON(200, authors)
}

func (h *AuthorHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404, "Cannot find author with that id")
		return
	}

	author, err := h.Catalog.GetAuthor(id)
	switch {
	case errors.Is(err, daoimpl.ErrAuthorNotFound):
		respondError(c, 404, "Cannot find author with that id")
	case err != nil:
		hlog.CtxErrorf(ctx, "get author failed: %v", err)
		respondError(c, 500, "Failed to fetch author")
	default:
		c.JSON(200, author)
	}
}

func (h *AuthorHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 404, "Cannot find author with that id")
		return
	}

	err = h.Catalog.DeleteAuthor(id)
	switch {
	case errors.Is(err, daoimpl.ErrAuthorNotFound):
		respondError(c, 404, "Cannot find author with that id")
	case errors.Is(err, daoimpl.ErrAuthorHasBooks):
		respondError(c, 400, "Cannot delete author with books associated with them")
	case err != nil:
		hlog.CtxErrorf(ctx, "delete author failed: %v", err)
		respondError(c, 500, "Failed to delete author")
	default:
		c.JSON(200, model.SuccessRes{Success: "Author deleted"})
	}
}
