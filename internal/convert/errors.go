package convert

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrSourceRead indicates the markdown source could not be read.
	ErrSourceRead = errors.New("source read failed")
	// ErrSinkWrite indicates the output document could not be written.
	ErrSinkWrite = errors.New("sink write failed")
)

const (
	sourceReadFailedCode = "SOURCE_READ_FAILED"
	sinkWriteFailedCode  = "SINK_WRITE_FAILED"
)

func wrapSourceReadError(path string, err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err), goerrors.CategoryCommand, "read markdown source").
		WithTextCode(sourceReadFailedCode)
}

func wrapSinkWriteError(path string, err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(fmt.Errorf("%w: %s: %w", ErrSinkWrite, path, err), goerrors.CategoryCommand, "write docx document").
		WithTextCode(sinkWriteFailedCode)
}
