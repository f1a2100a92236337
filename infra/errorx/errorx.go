package errorx

import (
	"errors"
	"fmt"
)

// Errorx 带错误码的业务错误
type Errorx struct {
	code int
	msg  string
}

func New(code int, msg string) *Errorx {
	return &Errorx{code: code, msg: msg}
}

func Newf(code int, format string, args ...any) *Errorx {
	return &Errorx{code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *Errorx) Error() string {
	return fmt.Sprintf("[%d] %s", e.code, e.msg)
}

func (e *Errorx) Code() int {
	return e.code
}

// Code 从错误链中提取错误码, 非 Errorx 返回 0
func Code(err error) int {
	var e *Errorx
	if errors.As(err, &e) {
		return e.code
	}
	return 0
}

// IsCode 判断错误链中是否带指定错误码
func IsCode(err error, code int) bool {
	return Code(err) == code
}
