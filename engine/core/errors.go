package core

import (
	"errors"
)

var (
	ErrNotInitialized = errors.New("subsystem not initialized")
	ErrNoGeometry     = errors.New("no geometry uploaded")
)
