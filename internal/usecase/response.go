package usecase

import "farha/internal/pagination"

// Response is the uniform envelope every catalog operation resolves to.
// Operations returning it are total functions: domain outcomes (not found,
// empty result) and faults (persistence, media, unexpected) all land here
// with Succeeded=false and a human-readable message; nothing propagates raw.
// Localization of messages is a presentation concern layered outside.
type Response[T any] struct {
	Data           T                    `json:"data"`
	Message        string               `json:"message"`
	Succeeded      bool                 `json:"succeeded"`
	Errors         []string             `json:"errors"`
	PaginationInfo *pagination.PageInfo `json:"paginationInfo"`
}

// Ok builds a success envelope.
func Ok[T any](data T, message string) *Response[T] {
	return &Response[T]{
		Data:      data,
		Message:   message,
		Succeeded: true,
	}
}

// OkPaged builds a success envelope carrying pagination metadata.
func OkPaged[T any](data T, message string, info pagination.PageInfo) *Response[T] {
	return &Response[T]{
		Data:           data,
		Message:        message,
		Succeeded:      true,
		PaginationInfo: &info,
	}
}

// Fail builds a failure envelope with a message and underlying error strings.
func Fail[T any](message string, errs ...string) *Response[T] {
	if len(errs) == 0 {
		errs = []string{message}
	}

	return &Response[T]{
		Message:   message,
		Succeeded: false,
		Errors:    errs,
	}
}
