//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/stretchr/testify/require"
)

// fakePrefix lays out <tmp>/lib, <tmp>/include and optionally lib/pkgconfig
// the way a homebrew cellar would.
func fakePrefix(t *testing.T, withPkgConfig bool) string {
	t.Helper()
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "include"), 0o755))
	if withPkgConfig {
		require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib", "pkgconfig"), 0o755))
	}
	return prefix
}

func fakeResolver(prefix string) *Resolver {
	return &Resolver{
		LookPath: func(name string) (string, error) {
			if name == "brew" {
				return "/fake/brew", nil
			}
			return "", fmt.Errorf("%s not found", name)
		},
		RunCommand: func(ctx context.Context, name string, args ...string) (string, error) {
			return prefix, nil
		},
	}
}

func TestResolve(t *testing.T) {
	prefix := fakePrefix(t, true)
	r := fakeResolver(prefix)

	res, err := r.Resolve(context.Background(), Library{Formula: "openssl@3", PkgConfig: "openssl"})
	require.NoError(t, err)
	assert.Equal(t, prefix, res.Prefix)
	assert.Equal(t, filepath.Join(prefix, "lib"), res.LibDir)
	assert.Equal(t, filepath.Join(prefix, "include"), res.IncludeDir)
	assert.Equal(t, filepath.Join(prefix, "lib", "pkgconfig"), res.PkgConfigDir)
}

func TestResolveMissingDirs(t *testing.T) {
	// prefix resolves but holds no lib/include
	r := fakeResolver(t.TempDir())

	_, err := r.Resolve(context.Background(), Library{Formula: "libpq", PkgConfig: "libpq"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "libpq")
}

func TestResolveNotInstalled(t *testing.T) {
	r := &Resolver{
		LookPath: func(string) (string, error) {
			return "", fmt.Errorf("not found")
		},
		RunCommand: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", fmt.Errorf("should not be called")
		},
	}

	_, err := r.Resolve(context.Background(), Library{Formula: "openssl@3", PkgConfig: "openssl"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not installed")
}

func TestResolveAllCollectsFailures(t *testing.T) {
	prefix := fakePrefix(t, false)
	calls := 0
	r := &Resolver{
		LookPath: func(name string) (string, error) { return "/fake/brew", nil },
		RunCommand: func(ctx context.Context, name string, args ...string) (string, error) {
			calls++
			if calls == 1 {
				return prefix, nil
			}
			return "", fmt.Errorf("no such formula")
		},
	}

	resolved, errs := r.ResolveAll(context.Background(), DefaultLibraries())
	require.Len(t, resolved, 1)
	require.Len(t, errs, 1)
}

func TestBuildExports(t *testing.T) {
	t.Setenv("LDFLAGS", "-L/existing")
	t.Setenv("CPPFLAGS", "")
	t.Setenv("PKG_CONFIG_PATH", "")

	prefix := fakePrefix(t, true)
	res := &Resolution{
		Prefix:       prefix,
		LibDir:       filepath.Join(prefix, "lib"),
		IncludeDir:   filepath.Join(prefix, "include"),
		PkgConfigDir: filepath.Join(prefix, "lib", "pkgconfig"),
	}

	e := BuildExports([]*Resolution{res})
	assert.Equal(t, "-L/existing -L"+res.LibDir, e.LDFLAGS)
	assert.Equal(t, "-I"+res.IncludeDir, e.CPPFLAGS)
	assert.Equal(t, res.PkgConfigDir, e.PkgConfigPath)

	// resolving twice must not duplicate tokens
	e2 := BuildExports([]*Resolution{res, res})
	assert.Equal(t, e.LDFLAGS, e2.LDFLAGS)
}

func TestShellAndDotenvLines(t *testing.T) {
	e := Exports{LDFLAGS: "-L/x/lib", CPPFLAGS: "-I/x/include", PkgConfigPath: "/x/lib/pkgconfig"}

	shell := e.ShellLines()
	require.Len(t, shell, 3)
	assert.Equal(t, `export LDFLAGS="-L/x/lib"`, shell[0])
	assert.Equal(t, `export CPPFLAGS="-I/x/include"`, shell[1])

	dotenv := e.DotenvLines()
	require.Len(t, dotenv, 3)
	assert.Equal(t, "LDFLAGS=-L/x/lib", dotenv[0])
}

func TestWriteDotenv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "build.env")
	e := Exports{LDFLAGS: "-L/x/lib", CPPFLAGS: "-I/x/include"}

	require.NoError(t, e.WriteDotenv(file))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "LDFLAGS=-L/x/lib\nCPPFLAGS=-I/x/include\n", string(b))
}
