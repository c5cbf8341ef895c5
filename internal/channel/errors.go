package channel

import "errors"

// Sentinel errors for channels.
var (
	// ErrNilSubscriber is returned when Subscribe is given a nil callback.
	ErrNilSubscriber = errors.New("subscriber cannot be nil")

	// ErrChannelClosed is returned when subscribing to a closed channel.
	ErrChannelClosed = errors.New("channel is closed")
)
