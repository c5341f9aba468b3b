package domain

import "errors"

var (
	ErrDecode            = errors.New("image cannot be decoded")
	ErrNetwork           = errors.New("label lookup failed")
	ErrMalformedResponse = errors.New("malformed label response")
	ErrServerStatus      = errors.New("label service error")
	ErrStore             = errors.New("image cannot be stored")
)

// FailureKind is the category a per-file fault is counted under.
type FailureKind string

const (
	FailureDecode            FailureKind = "decode"
	FailureNetwork           FailureKind = "network"
	FailureMalformedResponse FailureKind = "malformedResponse"
	FailureServerStatus      FailureKind = "serverStatus"
	FailureStore             FailureKind = "store"
	FailureOther             FailureKind = "other"
)

func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrDecode):
		return FailureDecode
	case errors.Is(err, ErrNetwork):
		return FailureNetwork
	case errors.Is(err, ErrMalformedResponse):
		return FailureMalformedResponse
	case errors.Is(err, ErrServerStatus):
		return FailureServerStatus
	case errors.Is(err, ErrStore):
		return FailureStore
	default:
		return FailureOther
	}
}
