package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
)

// Stable error classes recorded on fetch attempt rows and metrics. These
// strings are part of the observability contract and must not change.
const (
	ClassTimeout       = "Timeout"
	ClassDNS           = "DNS"
	ClassConnect       = "ConnectError"
	ClassTLS           = "TLSError"
	ClassHTTPStatus    = "HTTPStatusError"
	ClassCircuitOpen   = "CircuitOpen"
	ClassRateLimited   = "RateLimited"
	ClassConcurrency   = "DomainConcurrencyLimited"
	ClassMaxBytes      = "MaxBytesExceeded"
	ClassMissingSource = "MissingSourceId"
	ClassMissingURL    = "MissingEndpoint"
)

// ClassifiedError pairs a transport or guardrail error with its stable class.
type ClassifiedError struct {
	Class string
	Err   error
}

func (e *ClassifiedError) Error() string {
	if e.Err == nil {
		return e.Class
	}
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *ClassifiedError) Unwrap() error { return e.Err }

func classified(class string, err error) *ClassifiedError {
	return &ClassifiedError{Class: class, Err: err}
}

// Classify maps an outbound request error to its stable class. Unknown errors
// fall back to the truncated Go error type name so the taxonomy stays bounded
// but still distinguishes new failure families.
func Classify(err error) string {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ClassDNS
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return ClassTLS
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return ClassTLS
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return ClassConnect
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ClassConnect
	}

	name := fmt.Sprintf("%T", err)
	name = strings.TrimLeft(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if len(name) > 40 {
		name = name[:40]
	}
	return name
}
