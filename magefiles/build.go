//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/sourcegraph/conc/iter"
)

// Lambdas groups commands for building lambda artifacts.
type Lambdas mg.Namespace

// Build cross-compiles and zips the lambda handlers for deployment without
// docker bundling.
func (Lambdas) Build() error {
	const buildDirPerm = 0o0700

	if err := os.MkdirAll("builds", buildDirPerm); err != nil {
		return fmt.Errorf("failed to create build dir: %w", err)
	}

	if err := errors.Join(iter.Map([]string{
		"examples/basic/handler",
	}, func(it *string) error {
		return buildGoLambda(*it, filepath.Base(filepath.Dir(*it)))
	})...); err != nil {
		return fmt.Errorf("failed to build lambdas: %w", err)
	}

	return nil
}

// buildGoLambda builds a single lambda function's binary.
func buildGoLambda(pkgDir, name string) error {
	dstdir := filepath.Join("builds", name)
	if err := os.MkdirAll(dstdir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to mkdir destination: %w", err)
	}

	tmpdir, err := os.MkdirTemp("", "lambda_build_*")
	if err != nil {
		return fmt.Errorf("failed to init temp dir: %w", err)
	}

	err = runIfNoErr(err, nil, "rm", "-f", filepath.Join(dstdir, "pkg.zip"))
	err = runIfNoErr(err, map[string]string{"GOOS": "linux", "GOARCH": "arm64"},
		"go", "build", "-trimpath", "-tags", "lambda.norpc",
		"-o", filepath.Join(tmpdir, "bootstrap"), "./"+pkgDir)
	err = runIfNoErr(err, nil, "zip", "-r", "-j", "-X", filepath.Join(dstdir, "pkg.zip"), tmpdir)

	return err
}

// runIfNoErr will only run cmd with args if 'err' is nil, else it will return err. This allows us to
// make somewhat readable automation around scripts.
func runIfNoErr(err error, env map[string]string, cmd string, args ...string) error {
	if err != nil {
		return err
	}

	if err = sh.RunWith(env, cmd, args...); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}

	return nil
}
