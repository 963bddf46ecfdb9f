package domain

import "errors"

var (
	// ErrInferenceFailure means the completion stream errored or produced no text.
	ErrInferenceFailure = errors.New("inference failure")

	// ErrAssetMissing means a catalog image could not be read.
	ErrAssetMissing = errors.New("asset missing")

	// ErrTransportFailure means the messaging platform rejected an outbound call.
	ErrTransportFailure = errors.New("transport failure")
)
