package infra

import (
	"errors"
	"log/slog"

	"easebooking/internal/pkg/errs"
)

type GatewayErrorKind string

type GatewayError struct {
	Kind   GatewayErrorKind
	msg    string
	remote string // message supplied by the remote collaborator, if any
	err    error  // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// RemoteMessage returns the collaborator-provided error text, empty
// when the failure happened before a response arrived.
func (e GatewayError) RemoteMessage() string {
	return e.remote
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg, remoteMsg string, err error) error {
	slogger.Error("Gateway error: "+msg,
		slog.String("kind", string(kind)),
		slog.String("remote_message", remoteMsg),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, remote: remoteMsg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RemoteMessageOf extracts the collaborator-provided message from an
// error chain, if one is present.
func RemoteMessageOf(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.remote
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound      GatewayErrorKind = "NOT_FOUND"
	KindUnauthorized  GatewayErrorKind = "UNAUTHORIZED"
	KindRemoteFailure GatewayErrorKind = "REMOTE_FAILURE"
	KindDecodeFailure GatewayErrorKind = "DECODE_FAILURE"
)
