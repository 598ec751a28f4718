package contract

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrIntentUnparseable = errors.New("intent analysis response unparseable")
	ErrCompletionFailed  = errors.New("completion call failed")
	ErrStoreRequired     = errors.New("destination store is required")
)
