package fetch

import (
	"errors"
	"fmt"
)

// FetchError classifies any failed metrics call: transport failure, non-2xx
// status, or an undecodable body. All three are the same kind to callers,
// which recover locally with zero-value results and surface the failure
// through the error banner.
type FetchError struct {
	Endpoint string
	Status   int // 0 when the request never produced a response
	cause    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.Status, e.cause)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.cause)
}

func (e *FetchError) Unwrap() error {
	return e.cause
}

// IsFetchFailed reports whether err is a classified fetch failure.
func IsFetchFailed(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
