// File: rcparams/discovery.go
package rcparams

import (
	"os"
	"path/filepath"
	"runtime"
)

// rcName is the base name of the configuration file.
const rcName = "arvizrc"

// rcExtensions are tried per candidate directory, in order. The bare
// line-format file wins over the structured variants.
var rcExtensions = []string{"", ".toml", ".yaml"}

// Locate returns the path of the configuration file to load, or "" when
// none exists. Candidate directories are tried in order, first match
// wins:
//
//  1. the current working directory
//  2. $ARVIZ_DATA, if set
//  3. on Linux and FreeBSD, $XDG_CONFIG_HOME/arviz (or
//     $HOME/.config/arviz when XDG_CONFIG_HOME is unset)
//  4. elsewhere, $HOME/.arviz
//
// Within each directory, "arvizrc" is tried first, then the "arvizrc.toml"
// and "arvizrc.yaml" variants. A candidate must exist and not be a
// directory.
func Locate() string {
	for _, dir := range candidateDirs() {
		for _, ext := range rcExtensions {
			path := filepath.Join(dir, rcName+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// candidateDirs builds the discovery search path.
func candidateDirs() []string {
	var dirs []string

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	if dataDir := os.Getenv("ARVIZ_DATA"); dataDir != "" {
		dirs = append(dirs, dataDir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		xdgBase := os.Getenv("XDG_CONFIG_HOME")
		if xdgBase == "" {
			xdgBase = filepath.Join(home, ".config")
		}
		dirs = append(dirs, filepath.Join(xdgBase, "arviz"))
	default:
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".arviz"))
		}
	}

	return dirs
}
