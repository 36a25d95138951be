package remote

import "errors"

var (
	// ErrNotFound indicates a remote or refspec is not configured.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a malformed name, URL, or refspec string,
	// or a remote naming collision.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConnection indicates the transport failed to establish a connection.
	ErrConnection = errors.New("connection failed")
	// ErrProtocol indicates the negotiation, transfer, unpack, or tip-update
	// exchange failed, on either peer.
	ErrProtocol = errors.New("protocol failure")
	// ErrHostCallback indicates a failure raised while delivering a
	// per-reference push result to the caller boundary. It takes precedence
	// over any pending [ErrProtocol].
	ErrHostCallback = errors.New("status sink failed")
)
