package domain

import "errors"

var ErrMalformedSession = errors.New("stored user session is not valid JSON")
var ErrStoreUnavailable = errors.New("session store unavailable")
var ErrInvalidSessionKey = errors.New("unknown session key")
