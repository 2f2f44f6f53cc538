package config

import "errors"

var (
	// ErrConfigParse is returned when the configuration document cannot be
	// read, is not well-formed JSON, or does not match the expected field set.
	ErrConfigParse = errors.New("invalid configuration document")

	// ErrConfigWrite is returned when the configuration document cannot be
	// written to disk.
	ErrConfigWrite = errors.New("cannot write configuration document")
)
