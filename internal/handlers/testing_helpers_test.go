package handlers_test

import (
	"errors"
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertErr(msg string) error {
	return errors.New(msg)
}
