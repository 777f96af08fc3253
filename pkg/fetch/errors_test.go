package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"classified passes through", classified(ClassRateLimited, nil), ClassRateLimited},
		{"wrapped classified", fmt.Errorf("fetch: %w", classified(ClassMaxBytes, nil)), ClassMaxBytes},
		{"deadline exceeded", context.DeadlineExceeded, ClassTimeout},
		{"wrapped deadline", fmt.Errorf("do: %w", context.DeadlineExceeded), ClassTimeout},
		{"dns error", &net.DNSError{Err: "no such host", Name: "x"}, ClassDNS},
		{"connection refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ClassConnect},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("broken")}, ClassConnect},
		{"unknown error uses type name", errors.New("mystery"), "errorString"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestClassifiedErrorMessage(t *testing.T) {
	assert.Equal(t, "RateLimited", classified(ClassRateLimited, nil).Error())
	assert.Equal(t, "MaxBytesExceeded: body too large",
		classified(ClassMaxBytes, errors.New("body too large")).Error())
}
