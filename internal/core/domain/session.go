package domain

import "errors"

// ErrInvalidSession covers every session verification failure: missing,
// malformed, badly signed, expired, or revoked tokens. The guard maps
// all of them to the same 401 so callers cannot probe which check failed.
var ErrInvalidSession = errors.New("invalid session token")
