package response

import (
	"community_bbs/pkg/apperrors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// Fail 业务失败响应 (HTTP 200, 业务码非 0)
func Fail(c *gin.Context, errCode int, msg string) {
	c.JSON(http.StatusOK, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// FromError 按错误类别选择 HTTP 状态码，存储层错误不向客户端暴露细节
func FromError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		Error(c, http.StatusBadRequest, ErrInvalidParam, err.Error())
	case apperrors.KindNotFound:
		Error(c, http.StatusNotFound, ErrTopicNotFound, err.Error())
	case apperrors.KindConflict:
		Error(c, http.StatusConflict, ErrRefreshRunning, err.Error())
	default:
		Error(c, http.StatusInternalServerError, ErrServerInternal, "internal server error")
	}
}
