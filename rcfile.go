// File: rcparams/rcfile.go
package rcparams

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Params is the process-wide registry: schema defaults merged with the
// discovered arvizrc file, built once at package initialization. All
// consumers share this instance. An invalid rc file aborts startup.
var Params = MustLoad(false)

// Load builds a registry seeded with every schema default and, unless
// ignoreFiles is set, merges the discovered configuration file on top.
// File values override defaults.
func Load(ignoreFiles bool) (*RcParams, error) {
	params := NewWithDefaults()
	if ignoreFiles {
		return params, nil
	}

	path := Locate()
	if path == "" {
		return params, nil
	}

	fileParams, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := params.Update(fileParams.Copy()); err != nil {
		return nil, err
	}
	return params, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(ignoreFiles bool) *RcParams {
	params, err := Load(ignoreFiles)
	if err != nil {
		panic(fmt.Sprintf("rcparams: failed to load configuration: %v", err))
	}
	return params
}

// ReadFile parses the configuration file at path into a registry holding
// only the keys present in the file (defaults are not filled in). The
// format follows the file extension: ".toml" and ".yaml"/".yml" parse as
// structured documents, anything else as line-based arvizrc text.
//
// In the line format, "#" starts a comment, blank lines are skipped and
// lines without a colon are logged and skipped. Duplicate keys log a
// warning with the last occurrence winning. An unknown key or invalid
// value aborts the load with a *FileError.
func ReadFile(path string) (*RcParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if !utf8.Valid(data) {
		logger.Warn("cannot decode configuration file, check LANG and LC_* variables",
			"path", path, "encoding", "utf-8")
		return nil, fmt.Errorf("config file %q: %w", path, ErrEncoding)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		fileConfig := make(map[string]any)
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file %q: %w", path, err)
		}
		return readStructured(path, fileConfig)
	case ".yaml", ".yml":
		fileConfig := make(map[string]any)
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file %q: %w", path, err)
		}
		return readStructured(path, fileConfig)
	default:
		return readLines(path, data)
	}
}

// readLines parses the native line-based arvizrc format.
func readLines(path string, data []byte) (*RcParams, error) {
	config := New()

	for lineNo, rawLine := range strings.Split(string(data), "\n") {
		line, _, _ := strings.Cut(rawLine, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, val, found := strings.Cut(line, ":")
		if !found {
			logger.Warn("illegal line in rc file, skipping",
				"path", path, "line", lineNo+1, "text", rawLine)
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if config.Has(key) {
			logger.Warn("duplicate key in rc file, last value wins",
				"path", path, "line", lineNo+1, "key", key)
		}
		if err := config.Set(key, val); err != nil {
			return nil, &FileError{Path: path, Line: lineNo + 1, Text: rawLine, Err: err}
		}
	}

	return config, nil
}

// readStructured applies a parsed TOML/YAML document, flattened to
// dot-notation keys, through the normal validation path.
func readStructured(path string, fileConfig map[string]any) (*RcParams, error) {
	config := New()
	flat := flattenMap(fileConfig, "")
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		if err := config.Set(key, flat[key]); err != nil {
			return nil, &FileError{Path: path, Text: key, Err: err}
		}
	}
	return config, nil
}

// Save writes the registry to path in the line-based arvizrc format,
// sorted by key, using an atomic temp-file-and-rename write.
func (p *RcParams) Save(path string) error {
	var b strings.Builder
	for _, key := range p.SortedKeys() {
		fmt.Fprintf(&b, "%s: %s\n", key, formatRCValue(p.storage[key]))
	}
	return atomicWriteFile(path, []byte(b.String()))
}

// SaveTOML writes the registry to path as a nested TOML document. TOML
// has no null, so entries currently set to none are omitted.
func (p *RcParams) SaveTOML(path string) error {
	nested := make(map[string]any)
	for key, value := range p.storage {
		if value == nil {
			continue
		}
		setNestedValue(nested, key, value)
	}

	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(nested); err != nil {
		return fmt.Errorf("failed to marshal rc params to TOML: %w", err)
	}
	return atomicWriteFile(path, []byte(b.String()))
}

// formatRCValue renders a canonical value in the form the line parser
// reads back: none for nil, comma-separated elements for sequences.
func formatRCValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "none"
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, fmt.Sprintf("%v", elem))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// atomicWriteFile writes data to path via a temporary file in the same
// directory followed by a rename.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file %q: %w", tempPath, err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file %q: %w", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %q: %w", tempPath, err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file to %q: %w", path, err)
	}
	removed = true

	return nil
}
