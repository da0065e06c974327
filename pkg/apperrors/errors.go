// Package apperrors 业务错误分类，HTTP 层据此区分参数错误与存储故障
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind 错误类别
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindPersistence Kind = "persistence"
	KindConflict    Kind = "conflict"
)

// Error 带类别的业务错误
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation 参数缺失或不合法，未做任何修改
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationWrap 保留校验器的字段错误
func ValidationWrap(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: cause}
}

// NotFound 记录不存在
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict 已有同类操作在执行
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Persistence 存储失败，附带调用栈
func Persistence(op string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: op, Err: errors.WithStack(cause)}
}

// KindOf 非 *Error 时返回空
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsPersistence(err error) bool { return KindOf(err) == KindPersistence }
