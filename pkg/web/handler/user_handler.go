package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"

	"book-nook/pkg/core/auth"
	coremodel "book-nook/pkg/core/user/model"
	"book-nook/pkg/core/user/repository/dao"
	daoimpl "book-nook/pkg/core/user/repository/dao/impl"
	"book-nook/pkg/web/model"
)

const minPasswordLen = 6

type UserHandler struct {
	Users    dao.UserRepository
	Sessions auth.SessionStore
}

func NewUserHandler(users dao.UserRepository, sessions auth.SessionStore) *UserHandler {
	return &UserHandler{Users: users, Sessions: sessions}
}

func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req model.CredentialsReq
	if err := c.BindAndValidate(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, 400, "Please enter username and password")
		return
	}
	if len(req.Password) < minPasswordLen {
		respondError(c, 400, "Password must be at least 6 characters long")
		return
	}

	// 检查用户名重复
	exists, err := h.Users.IsUsernameExists(req.Username)
	if err != nil {
		hlog.CtxErrorf(ctx, "check username failed: %v", err)
		respondError(c, 500, "Failed to register")
		return
	}
	if exists {
		respondError(c, 400, "Username already exists")
		return
	}

	// 密码加密
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password failed: %v", err)
		respondError(c, 500, "Failed to register")
		return
	}

	user := coremodel.User{Username: req.Username, Password: hashed}
	if err := h.Users.CreateUser(&user); err != nil {
		// 与存在性检查并发竞争时由唯一索引兜底
		if errors.Is(err, daoimpl.ErrDuplicateEntry) {
			respondError(c, 400, "Username already exists")
			return
		}
		hlog.CtxErrorf(ctx, "create user failed: %v", err)
		respondError(c, 500, "Failed to register")
		return
	}

	c.JSON(200, user)
}

func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.CredentialsReq
	if err := c.BindAndValidate(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, 400, "Please enter username and password")
		return
	}

	user, err := h.Users.GetByUsername(req.Username)
	if errors.Is(err, daoimpl.ErrUserNotFound) {
		respondError(c, 400, "Username does not exist")
		return
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "lookup user failed: %v", err)
		respondError(c, 500, "Internal Server error")
		return
	}

	// 校验密码
	ok, err := auth.VerifyPassword(user.Password, req.Password)
	if err != nil {
		hlog.CtxErrorf(ctx, "verify password failed: %v", err)
		respondError(c, 500, "Internal Server error")
		return
	}
	if !ok {
		respondError(c, 400, "Password is incorrect")
		return
	}

	token, err := auth.MakeToken()
	if err != nil {
		hlog.CtxErrorf(ctx, "make token failed: %v", err)
		respondError(c, 500, "Internal Server error")
		return
	}

	// 同一用户名只保留最新会话
	h.Sessions.Put(req.Username, token)

	setSessionCookie(c, "token", token, 0)
	c.JSON(200, model.LoginRes{Success: "Logged in", Token: token, UserID: user.ID})
}

// Logout 仅清除客户端 cookie，不回收服务端会话记录
func (h *UserHandler) Logout(ctx context.Context, c *app.RequestContext) {
	setSessionCookie(c, "token", "", -1)
	setSessionCookie(c, "user_id", "", -1)

	c.JSON(200, model.SuccessRes{Success: "Successfully logged out"})
}

// 会话 cookie 统一为 HttpOnly + Secure + SameSite=Strict
func setSessionCookie(c *app.RequestContext, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", "", protocol.CookieSameSiteStrictMode, true, true)
}
