//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/containers/storage/pkg/ioutils"
)

const envFilePerm = 0o644

// Exports is the environment a native-extension build needs to find the
// resolved libraries: -L flags for the linker, -I flags for the
// preprocessor, and pkg-config search paths.
type Exports struct {
	LDFLAGS       string
	CPPFLAGS      string
	PkgConfigPath string
}

// BuildExports folds the resolutions, in order, into the three variables.
// Inherited values from the calling environment are preserved and appended
// to, never silently replaced.
func BuildExports(resolved []*Resolution) Exports {
	e := Exports{
		LDFLAGS:       os.Getenv("LDFLAGS"),
		CPPFLAGS:      os.Getenv("CPPFLAGS"),
		PkgConfigPath: os.Getenv("PKG_CONFIG_PATH"),
	}

	for _, res := range resolved {
		e.LDFLAGS = appendToken(e.LDFLAGS, "-L"+res.LibDir, " ")
		e.CPPFLAGS = appendToken(e.CPPFLAGS, "-I"+res.IncludeDir, " ")
		if res.PkgConfigDir != "" {
			e.PkgConfigPath = appendToken(e.PkgConfigPath, res.PkgConfigDir, ":")
		}
	}
	return e
}

func appendToken(existing, token, sep string) string {
	if existing == "" {
		return token
	}
	if strings.Contains(sep+existing+sep, sep+token+sep) {
		return existing
	}
	return existing + sep + token
}

// ShellLines renders eval-able `export` statements:
//
//	eval "$(envprep show)"
func (e Exports) ShellLines() []string {
	lines := []string{
		fmt.Sprintf("export LDFLAGS=%q", e.LDFLAGS),
		fmt.Sprintf("export CPPFLAGS=%q", e.CPPFLAGS),
	}
	if e.PkgConfigPath != "" {
		lines = append(lines, fmt.Sprintf("export PKG_CONFIG_PATH=%q", e.PkgConfigPath))
	}
	return lines
}

// DotenvLines renders `KEY=value` pairs for a .env file.
func (e Exports) DotenvLines() []string {
	lines := []string{
		"LDFLAGS=" + e.LDFLAGS,
		"CPPFLAGS=" + e.CPPFLAGS,
	}
	if e.PkgConfigPath != "" {
		lines = append(lines, "PKG_CONFIG_PATH="+e.PkgConfigPath)
	}
	return lines
}

// WriteDotenv writes the exports to filename atomically.
func (e Exports) WriteDotenv(filename string) error {
	content := strings.Join(e.DotenvLines(), "\n") + "\n"
	return ioutils.AtomicWriteFile(filename, []byte(content), envFilePerm) //nolint:wrapcheck
}
