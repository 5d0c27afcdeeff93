package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/voxel-schematics/internal/adapters/schematic/sponge"
	"github.com/bnema/voxel-schematics/internal/domain"
)

type operation string

const (
	opSelect operation = "select"
	opCopy   operation = "copy"
	opPaste  operation = "paste"
	opSave   operation = "save"
	opLoad   operation = "load"
)

// commandError shows a short message to the user and keeps the cause for
// errors.Is.
type commandError struct {
	message string
	err     error
}

func (e *commandError) Error() string {
	return e.message
}

func (e *commandError) Unwrap() error {
	return e.err
}

func (a *app) fail(op operation, name string, err error) error {
	if err == nil {
		return nil
	}

	message := userMessage(op, name, err)
	if diagnostic := err.Error(); a.flags.verbose && !strings.Contains(message, diagnostic) {
		message += " (" + diagnostic + ")"
	}

	return &commandError{message: message, err: err}
}

func userMessage(op operation, name string, err error) string {
	file := name + sponge.FileExtension

	switch {
	case errors.Is(err, domain.ErrIncompleteSelection):
		return "You must set both positions before copying."
	case errors.Is(err, domain.ErrEmptyClipboard) && op == opSave:
		return "You must copy something before saving!"
	case errors.Is(err, domain.ErrEmptyClipboard):
		return "You must copy or load something before pasting!"
	case errors.Is(err, domain.ErrAlreadyExists):
		return file + " already exists, please delete the file first."
	case errors.Is(err, domain.ErrIsDirectory):
		return file + " is a directory, please use a file name."
	case errors.Is(err, domain.ErrNotFound):
		return "File " + file + " was not a normal schematic file"
	case errors.Is(err, domain.ErrInvalidSchematicName):
		return fmt.Sprintf("%q is not a valid schematic name.", name)
	case errors.Is(err, domain.ErrActorNotFound):
		return "Actor is not in the world, place it with `schem actor set` first."
	case errors.Is(err, domain.ErrCorruptData), errors.Is(err, domain.ErrIoFailure):
		switch op {
		case opLoad:
			return "Error loading schematic: " + err.Error()
		case opSave:
			return "Error saving schematic: " + err.Error()
		default:
			return "Error pasting schematic: " + err.Error()
		}
	default:
		return err.Error()
	}
}
