package handler

import (
	"errors"
	"strconv"

	"starwars-api/internal/api/response"
	"starwars-api/internal/service"

	"github.com/gin-gonic/gin"
)

const msgNotFound = "Resource not found"

// handleServiceError 校验和冲突错误返回 400，不存在返回 404；
// 其余错误交给日志中间件记录，客户端只看到通用提示
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// parseIDParam 非整数 ID 与未匹配的路由一样返回 404
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, msgNotFound)
		return 0, false
	}
	return id, true
}

// readBody 读取原始请求体，由 FieldSet 负责解析和校验
func readBody(c *gin.Context) []byte {
	body, err := c.GetRawData()
	if err != nil {
		return nil
	}
	return body
}

// NotFound 未匹配路由的处理器
func NotFound(c *gin.Context) {
	response.NotFound(c, msgNotFound)
}
