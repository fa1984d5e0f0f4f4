package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// TransportError is a response the client will not interpret: a non-2xx
// status, or a 2xx body that is not valid JSON for the endpoint.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid response body: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NetworkError means no response was received at all
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is (or wraps) a NetworkError
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsTransport reports whether err is (or wraps) a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Describe turns a call failure into a short human cause for logs and the
// CLI's verbose output. It never reaches a result region.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var te *TransportError
	if errors.As(err, &te) {
		if te.Err != nil {
			return "Malformed response - the server did not return valid JSON"
		}
		return fmt.Sprintf("Server responded with HTTP %d", te.StatusCode)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timeout - the server took too long to respond"
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return "Request timeout - the server took too long to respond"
	}

	var oe *net.OpError
	if errors.As(err, &oe) {
		if oe.Timeout() {
			return "Connection timeout - the server took too long to respond"
		}
		var errno syscall.Errno
		if errors.As(oe.Err, &errno) {
			switch errno {
			case syscall.ECONNREFUSED:
				return "Connection refused - check that the backend is running and base_url is correct"
			case syscall.ECONNRESET:
				return "Connection reset by server"
			case syscall.ENETUNREACH:
				return "Network unreachable - check your network connection"
			case syscall.EHOSTUNREACH:
				return "Host unreachable - check that the backend host is online"
			}
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "DNS resolution failed - verify the hostname in base_url"
	}

	return describeMessage(err.Error())
}

// describeMessage is the fallback for errors that carry no typed cause
func describeMessage(msg string) string {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "connection refused"):
		return "Connection refused - check that the backend is running and base_url is correct"
	case strings.Contains(lower, "no such host"):
		return "DNS resolution failed - verify the hostname in base_url"
	case strings.Contains(lower, "connection reset"):
		return "Connection reset by server"
	case strings.Contains(lower, "tls") || strings.Contains(lower, "x509") || strings.Contains(lower, "certificate"):
		return "TLS error - check the backend certificate"
	case strings.Contains(lower, "eof"):
		return "Connection closed unexpectedly"
	case strings.Contains(lower, "unsupported protocol"):
		return "Invalid base_url - use http:// or https://"
	}

	return "Request failed: " + msg
}
