package domain

import "errors"

var (
	ErrIncompleteSelection = errors.New("incomplete selection")
	ErrEmptyClipboard      = errors.New("empty clipboard")
	ErrAlreadyExists       = errors.New("schematic already exists")
	ErrIsDirectory         = errors.New("schematic path is a directory")
	ErrNotFound            = errors.New("schematic not found")
	ErrCorruptData         = errors.New("corrupt schematic data")
	ErrIoFailure           = errors.New("schematic io failure")

	ErrActorNotFound        = errors.New("actor not found")
	ErrInvalidSchematicName = errors.New("invalid schematic name")
)
