//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binaryName = "anima-ffp"

type Build mg.Namespace

// Downloads the modules and builds the testbed binary into bin/.
func (Build) Testbed() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/"+binaryName, "."), withStream()); err != nil {
		return err
	}
	return nil
}
