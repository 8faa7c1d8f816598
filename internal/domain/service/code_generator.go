package service

// CodeGenerator produces one-time numeric codes. Implementations must be safe
// for concurrent callers; a single shared unsynchronized generator is not an
// acceptable implementation.
type CodeGenerator interface {
	Code() (string, error)
}
