// Package loader reads win-relation records from a rule source and builds
// the validated rule table. Lua, XML and YAML sources are supported; the
// Lua VM is discarded after loading.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/rpsls/engine/rules"
)

// rawRecord is one (winner, loser, text) triple before name resolution.
type rawRecord struct {
	source string
	index  int
	winner string
	loser  string
	text   string
}

// decoders maps a file extension to the function that reads its records.
var decoders = map[string]func(path string) ([]rawRecord, error){
	".lua":  decodeLua,
	".xml":  decodeXML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// Load reads the rule source at path and returns the validated table. path
// may be a single rule file or a directory, in which case every rule file
// in it is read and the records are validated together. No table is
// returned on any error.
func Load(path string) (*rules.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingSourceError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading rule source %s: %w", path, err)
	}

	var files []string
	if info.IsDir() {
		files, err = ruleFiles(path)
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{path}
	}

	var records []rawRecord
	for _, f := range files {
		decode, ok := decoders[strings.ToLower(filepath.Ext(f))]
		if !ok {
			return nil, &ParseError{Source: f, Err: fmt.Errorf("unsupported rule format %q", filepath.Ext(f))}
		}
		recs, err := decode(f)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	relations, err := compile(records)
	if err != nil {
		return nil, err
	}

	warn(records)

	t, err := rules.New(relations)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return t, nil
}

// ruleFiles lists the rule files in dir: victories.* first, rest alphabetical.
func ruleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rule directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := decoders[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, &MissingSourceError{Path: dir, Err: fmt.Errorf("no rule files in %s: %w", dir, fs.ErrNotExist)}
	}

	sort.Slice(names, func(i, j int) bool {
		vi := strings.HasPrefix(names[i], "victories.")
		vj := strings.HasPrefix(names[j], "victories.")
		if vi != vj {
			return vi
		}
		return names[i] < names[j]
	})

	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(dir, n)
	}
	return files, nil
}
