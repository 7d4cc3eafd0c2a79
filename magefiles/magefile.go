//go:build mage

// Package main provides build targets for the proompt database tools using Mage.
//
// Usage:
//
//	mage build       Compile cleardb, seeddb and viewdb to bin/
//	mage test:all    Run all tests
//	mage test:unit   Run tests without the cross-tool scenario
//	mage test:cover  Run all tests with a coverage profile
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install the tools to GOPATH/bin
//	mage stats       Print Go LOC per package as JSON
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
	binaryDir  = "bin"
	versionVar = "github.com/dikkadev/proompt-dbtools/internal/cli.Version"
)

// tools lists the binaries built from cmd/.
var tools = []string{"cleardb", "seeddb", "viewdb"}

// Build compiles every tool to bin/. Set VERSION to stamp the binaries.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	var ldflags []string
	if v := os.Getenv("VERSION"); v != "" {
		ldflags = []string{"-ldflags", "-X " + versionVar + "=" + v}
	}
	for _, tool := range tools {
		args := append([]string{"build", "-v"}, ldflags...)
		args = append(args, "-o", filepath.Join(binaryDir, tool), "./cmd/"+tool)
		if err := sh.RunV(binGo, args...); err != nil {
			return err
		}
	}
	return nil
}

// Lint runs golangci-lint.
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

// Install builds and copies the tools to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	for _, tool := range tools {
		src := filepath.Join(binaryDir, tool)
		dst := filepath.Join(gopath, "bin", tool)
		if err := sh.Copy(dst, src); err != nil {
			return err
		}
	}
	return nil
}
