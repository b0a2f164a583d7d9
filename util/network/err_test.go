package network

import (
	"net"
	"syscall"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetErrType(t *testing.T) {
	// Other cases are tested in http_test.go
	assert.Exactly(t, Unknown, GetErrType(&net.OpError{}), "should return unknown error type")
	assert.Exactly(t, Unknown, GetErrType(errors.New("plain")), "should return unknown error type")
	assert.Exactly(t, Nil, GetErrType(nil), "should return nil error type")

	err := errors.Wrap(&net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, "Fetch")
	assert.Exactly(t, Refused, GetErrType(err), "should find wrapped error type")

	err = errors.Wrap(&net.DNSError{Err: "no such host"}, "Fetch")
	assert.Exactly(t, NoSuchHost, GetErrType(err), "should find wrapped error type")
}
