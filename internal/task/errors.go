package task

import "errors"

var (
	// ErrEmptyInput is returned when the message contains no usable text.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrUnparsableMessage is returned when the date parser fails entirely;
	// no partial task is created.
	ErrUnparsableMessage = errors.New("could not interpret message")
)
