package obs

import "fmt"

// NotFoundError indicates the observation store file does not exist.
// It is reported before any store access so that the SQLite driver never
// creates an empty database at the requested path.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("observation store does not exist: %s", e.Path)
}

// InvalidIndexError indicates a non-positive observation index. Observation
// indices are 1-based; this is rejected at the boundary before any store
// query runs.
type InvalidIndexError struct {
	Index int
}

// Error implements the error interface.
func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("observation index must be within [1, num-observations], got %d", e.Index)
}

// OutOfRangeError indicates an observation index beyond the number of
// samples available in the store.
type OutOfRangeError struct {
	Index int // Requested 1-based index
	Count int // Number of samples in the store
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("observation index %d out of range [1, %d]", e.Index, e.Count)
}

// CorruptRecordError indicates a record whose payload could not be
// reconstructed: decompression failure, shape decode failure, or an element
// count that does not match the product of the shape dimensions. No recovery
// is attempted; the whole invocation aborts.
type CorruptRecordError struct {
	Episode int64
	Step    int64
	Agent   string
	Cause   error
}

// Error implements the error interface.
func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt observation record [episode=%d, step=%d, agent=%s]: %v",
		e.Episode, e.Step, e.Agent, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *CorruptRecordError) Unwrap() error {
	return e.Cause
}

// StorageError represents a failure in the store itself: an unreachable or
// malformed database, or a query that could not run.
type StorageError struct {
	Operation string // Operation that failed ("count", "resolve", "agents", "fetch", etc.)
	Cause     error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [operation=%s]: %v", e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{
		Operation: operation,
		Cause:     cause,
	}
}
