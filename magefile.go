//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified
var Default = Test

// Test runs every package test with race detection
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Build compiles the j2py command
func Build() error {
	mg.Deps(Test)
	fmt.Println("Building j2py...")
	return sh.RunV("go", "build", "-o", "bin/j2py", "./cmd/j2py")
}

// Lint runs go vet over the module
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Cover writes a coverage profile and opens the HTML report
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out")
}
