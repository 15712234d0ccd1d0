package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind LLM 调用失败的类别
type ErrorKind string

const (
	KindAuth     ErrorKind = "auth"     // 缺少或被拒绝的凭证
	KindTimeout  ErrorKind = "timeout"  // 请求超时
	KindProvider ErrorKind = "provider" // 其他服务端或网络错误

	KindEmptyResponse ErrorKind = "empty_response" // 模型没有返回内容
)

// 可配合 errors.Is 使用的哨兵错误
var (
	ErrAuth     = errors.New("llm: missing or rejected credential")
	ErrTimeout  = errors.New("llm: request timed out")
	ErrProvider = errors.New("llm: provider error")

	ErrEmptyResponse = errors.New("llm: empty response from model")
)

// Error 一次 LLM 调用的失败
type Error struct {
	Kind    ErrorKind
	Profile Profile
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s request failed (%s): %v", e.Profile, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 让 errors.Is(err, ErrTimeout) 等判断按类别匹配
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAuth:
		return e.Kind == KindAuth
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrProvider:
		return e.Kind == KindProvider
	case ErrEmptyResponse:
		return e.Kind == KindEmptyResponse
	}
	return false
}

// KindOf 返回错误类别，非 *Error 的错误按 provider 处理
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProvider
}

func classify(err error) ErrorKind {
	if errors.Is(err, ErrEmptyResponse) {
		return KindEmptyResponse
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401"), strings.Contains(msg, "403"),
		strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid api key"):
		return KindAuth
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return KindTimeout
	}
	return KindProvider
}
