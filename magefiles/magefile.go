//go:build mage

// Package main provides build targets for the fluxgrid project using Mage.
//
// Usage:
//
//	mage build     Compile the fluxgrid binary to bin/
//	mage test      Run all tests
//	mage bench     Run all benchmarks
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install fluxgrid to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "fluxgrid"
	binaryDir  = "bin"
	cmdDir     = "./cmd/fluxgrid"
)

// Build compiles the fluxgrid binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Bench runs all benchmarks without the regular tests.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Lint runs golangci-lint over the whole module.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	target := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(target, filepath.Join(binaryDir, binaryName))
}
