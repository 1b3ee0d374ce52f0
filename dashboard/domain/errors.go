package domain

import "errors"

var (
	ErrUnknownVerb       = errors.New("unknown container action")
	ErrActionUnsupported = errors.New("container actions are not supported by this backend")
	ErrNoClient          = errors.New("transport client is not initialized")
	ErrNoKubeConfig      = errors.New("kubernetes configuration not provided")
	ErrMalformedReply    = errors.New("malformed reply from transport")
	ErrNoSession         = errors.New("rpc session could not be established")
	ErrUnknownBackend    = errors.New("unknown transport backend")
	ErrActionNotOffered  = errors.New("container action not offered")
)
