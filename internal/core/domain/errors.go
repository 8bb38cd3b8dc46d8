package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured    = errors.New("home assistant not configured")
	ErrNotFound         = errors.New("entity not found")
	ErrConnectionFailed = errors.New("could not connect to home assistant with provided credentials")
	ErrSourceMismatch   = errors.New("device control requires home assistant data source")
	ErrInvalidAction    = errors.New("invalid device action")
)

// NetworkError is a transport level failure (dns, refused connection, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-2xx response from the remote platform.
type RemoteError struct {
	Op     string
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: remote returned status %d", e.Op, e.Status)
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
