package catalog

import "errors"

// ErrClosed is returned by Products and Filters after Close.
var ErrClosed = errors.New("catalog: closed")

// FetchError reports a failed store query. Err is the store's error.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	if e.Op == "" {
		return "catalog: fetch products: " + e.Err.Error()
	}
	return "catalog: " + e.Op + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }
