//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package's unit tests.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "-count=1", "./..."), withStream())
	return err
}

// Runs the geometry and config tests with the race detector and coverage.
// The race detector needs cgo.
func (Test) Geometry() error {
	_, err := executeCmd("go",
		withArgs("test", "-race", "-cover", "./engine/geometry/...", "./engine/config/..."),
		withEnv("CGO_ENABLED", "1"),
		withStream())
	return err
}
