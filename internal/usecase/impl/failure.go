package impl

import (
	"farha/internal/errors"
	"farha/internal/usecase"
)

// failure is the uniform boundary between the orchestrator and anything that
// went wrong below it. The deepest available cause supplies the error detail,
// so a constraint violation buried under wrap layers still reaches the
// caller's envelope verbatim.
func failure[T any](message string, err error) *usecase.Response[T] {
	cause := errors.Cause(err)
	if cause == nil {
		cause = err
	}

	return usecase.Fail[T](message, cause.Error())
}
