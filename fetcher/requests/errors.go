package requests

import (
	"context"
	"errors"
	"fmt"
	"net"
	"skinmapping/pkg/messages"
	"strings"
)

// Category of a failed request, used on the log lines and metrics.
type ErrorType string

const (
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeConnection ErrorType = "connection"
	ErrorTypeStatus     ErrorType = "status"
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// FetchError wraps any failure of a single GET.
type FetchError struct {
	Type       ErrorType
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Type == ErrorTypeStatus {
		return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// categorize analyzes a transport error.
func categorize(url string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Type: ErrorTypeTimeout, URL: url, Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return &FetchError{Type: ErrorTypeConnection, URL: url, Err: err}
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "eof") {
		return &FetchError{Type: ErrorTypeConnection, URL: url, Err: err}
	}

	return &FetchError{Type: ErrorTypeUnknown, URL: url, Err: err}
}
