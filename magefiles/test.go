//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

// Packages that do not need a window or a GL driver.
var headlessPackages = []string{
	"./engine/config/...",
	"./engine/containers/...",
	"./engine/core/...",
	"./engine/assets/...",
	"./engine/renderer/...",
}

type Test mg.Namespace

// Runs the headless test suite.
func (Test) All() error {
	_, err := executeCmd("go", withArgs(append([]string{"test", "-count=1"}, headlessPackages...)...), withStream())
	return err
}

// Runs the headless test suite with the race detector, which needs cgo.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs(append([]string{"test", "-race", "-count=1"}, headlessPackages...)...), withEnv("CGO_ENABLED=1"), withStream())
	return err
}
