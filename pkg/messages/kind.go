package messages

import (
	"context"
	"io/fs"
	"net"
	"net/url"

	"github.com/lexcomply/admin/pkg/httperr"
	"github.com/lexcomply/admin/pkg/jwt"
	"github.com/pkg/errors"
)

type Kind int

const (
	Unknown Kind = iota
	Network
	Canceled
	TokenExpired
	Validation
	Unauthorized
	Forbidden
	NotFound
	Conflict
	TooLarge
	Server
)

var kindNames = map[Kind]string{
	Unknown:      "unknown",
	Network:      "network",
	Canceled:     "canceled",
	TokenExpired: "token-expired",
	Validation:   "validation",
	Unauthorized: "unauthorized",
	Forbidden:    "forbidden",
	NotFound:     "not-found",
	Conflict:     "conflict",
	TooLarge:     "too-large",
	Server:       "server",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return kindNames[Unknown]
}

// Classify maps an error returned by the sdk onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return Unknown
	}

	switch {
	case errors.Is(err, context.Canceled):
		return Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return Network
	case errors.Is(err, jwt.ErrExpired):
		return TokenExpired
	}

	if code := httperr.Code(err); code > 0 {
		return kindForCode(code)
	}

	// os errors satisfy net.Error through syscall.Errno
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return Unknown
	}

	var oe *net.OpError
	if errors.As(err, &oe) {
		return Network
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		return Network
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		return Network
	}

	return Unknown
}

func kindForCode(code int) Kind {
	switch {
	case code == 400, code == 422:
		return Validation
	case code == 401:
		return Unauthorized
	case code == 403:
		return Forbidden
	case code == 404:
		return NotFound
	case code == 409:
		return Conflict
	case code == 413:
		return TooLarge
	case code >= 500:
		return Server
	case code >= 400:
		return Validation
	}

	return Unknown
}
