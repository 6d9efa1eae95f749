package editor

import "errors"

var (
	// ErrFrameActive rejects a template change while a frame is applied.
	// Callers surface it as "remove the frame first".
	ErrFrameActive = errors.New("remove the frame before changing the template")

	// ErrUnknownFrame is returned when a frame id is not in the catalog.
	ErrUnknownFrame = errors.New("unknown frame")

	// ErrLayerNotFound is returned for operations on a missing layer id.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrNoGesture is returned when a gesture update arrives without a start.
	ErrNoGesture = errors.New("no gesture in progress")

	// ErrEmptyContent rejects adding a layer without content.
	ErrEmptyContent = errors.New("layer content is empty")

	// ErrNoVisibleContent fails export when nothing visible would be drawn.
	ErrNoVisibleContent = errors.New("add at least one visible field")
)
