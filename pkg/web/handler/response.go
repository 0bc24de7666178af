package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// 统一错误响应方法，响应体固定为 {"error": <message>}，
// 内部错误细节只进日志不出网
func respondError(c *app.RequestContext, code int, msg string) {
	c.JSON(code, utils.H{"error": msg})
}
