//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package doctor resolves the native libraries a libpq-backed toolchain
// needs at build time (openssl, libpq), and renders the LDFLAGS/CPPFLAGS
// environment a compiler needs to find them. It only reports; installing a
// missing library stays with the operator.
package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"waben/pkg/paths"

	"github.com/sirupsen/logrus"
)

// Library names one native build dependency under both of the package
// managers the resolver knows how to ask.
type Library struct {
	// Formula is the homebrew name, e.g. "openssl@3"
	Formula string
	// PkgConfig is the pkg-config module name, e.g. "openssl"
	PkgConfig string
}

// DefaultLibraries covers the postgres client toolchain: libpq itself and
// the openssl it links against.
func DefaultLibraries() []Library {
	return []Library{
		{Formula: "openssl@3", PkgConfig: "openssl"},
		{Formula: "libpq", PkgConfig: "libpq"},
	}
}

// Resolution is a successfully located library install.
type Resolution struct {
	Library Library
	// Prefix is the install root, e.g. /opt/homebrew/Cellar/openssl@3/3.3.1
	Prefix string
	// LibDir and IncludeDir are the verified <prefix>/lib and
	// <prefix>/include directories
	LibDir     string
	IncludeDir string
	// PkgConfigDir is <prefix>/lib/pkgconfig when present, else empty
	PkgConfigDir string
}

type Resolver struct {
	// LookPath is swappable for tests
	LookPath func(string) (string, error)
	// RunCommand returns the trimmed stdout of name args...
	RunCommand func(ctx context.Context, name string, args ...string) (string, error)
}

func NewResolver() *Resolver {
	return &Resolver{
		LookPath:   exec.LookPath,
		RunCommand: runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Resolve performs the presence check and path resolution for a single
// library: ask homebrew for the install prefix, fall back to pkg-config,
// then verify lib/ and include/ actually exist under it.
func (r *Resolver) Resolve(ctx context.Context, lib Library) (*Resolution, error) {
	prefix, err := r.installPrefix(ctx, lib)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Library:    lib,
		Prefix:     prefix,
		LibDir:     filepath.Join(prefix, "lib"),
		IncludeDir: filepath.Join(prefix, "include"),
	}

	var missing []string
	for _, dir := range []string{res.LibDir, res.IncludeDir} {
		if !paths.New(dir).Exist() {
			missing = append(missing, dir)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s resolved to %q but %s missing; reinstall the package or correct the prefix",
			lib.Formula, prefix, strings.Join(missing, ", "))
	}

	if pc := filepath.Join(res.LibDir, "pkgconfig"); paths.New(pc).Exist() {
		res.PkgConfigDir = pc
	}

	logrus.Infof("%s found at %q", lib.Formula, prefix)
	return res, nil
}

// ResolveAll resolves every library, collecting the failures instead of
// stopping at the first missing one so the operator sees the full picture.
func (r *Resolver) ResolveAll(ctx context.Context, libs []Library) ([]*Resolution, []error) {
	var (
		resolved []*Resolution
		errs     []error
	)
	for _, lib := range libs {
		res, err := r.Resolve(ctx, lib)
		if err != nil {
			logrus.Warnf("library check failed: %v", err)
			errs = append(errs, err)
			continue
		}
		resolved = append(resolved, res)
	}
	return resolved, errs
}

func (r *Resolver) installPrefix(ctx context.Context, lib Library) (string, error) {
	if brew, err := r.LookPath("brew"); err == nil {
		prefix, err := r.RunCommand(ctx, brew, "--prefix", lib.Formula)
		if err == nil && prefix != "" {
			return prefix, nil
		}
		logrus.Debugf("brew --prefix %s failed, trying pkg-config: %v", lib.Formula, err)
	}

	if _, err := r.LookPath("pkg-config"); err == nil {
		prefix, err := r.RunCommand(ctx, "pkg-config", "--variable=prefix", lib.PkgConfig)
		if err == nil && prefix != "" {
			return prefix, nil
		}
	}

	return "", fmt.Errorf("%s is not installed (checked homebrew and pkg-config); install it with your package manager and re-run", lib.Formula)
}
