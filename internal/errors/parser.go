package errors

import (
	"errors"
	"net/http"

	"github.com/ikkim/blog-api/internal/app/service"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Status  int
	Code    string // codes.go 참조
	Message string
}

// ParseError maps a service error to its HTTP status, code and client message.
// Unknown errors become a 500 without leaking their text.
func ParseError(err error) ErrorInfo {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: PostNotFound, Message: MsgPostNotFound}
	case errors.Is(err, service.ErrTitleContentRequired):
		return ErrorInfo{Status: http.StatusBadRequest, Code: ValidationRequired, Message: MsgTitleContentRequired}
	default:
		return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: MsgInternalServerError}
	}
}

// ParseAndRespond 에러를 파싱하여 응답 반환 (헬퍼 함수)
func ParseAndRespond(c interface{ JSON(int, interface{}) }, err error) ErrorInfo {
	info := ParseError(err)
	c.JSON(info.Status, ErrorResponse{Error: info.Message})
	return info
}
