package badge

import "errors"

var (
	// ErrAssetNotFound means a required read-only asset (the logo) could
	// not be opened. Not recoverable without fixing the deployment.
	ErrAssetNotFound = errors.New("badge asset not found")

	// ErrRenderFailure covers any other failure during measurement,
	// compositing or encoding. Fatal to the single call only.
	ErrRenderFailure = errors.New("badge render failure")
)
