// This file is part of vinput.
//
// vinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vinput.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/vinput/curated"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "config: unsupported format (%s)"
	ReadError         = "config: %v"
	DecodeError       = "config: %s: %v"
)

// GlobalSection is the name of the section that applies to all games.
const GlobalSection = "Global"

// Load the configuration in the file for the named game section. The section
// may be empty, in which case only the global part of the configuration is
// returned.
//
// A missing file is not an error. The returned map will be empty and the
// binding defaults will be used.
func Load(path string, section string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, curated.Errorf(ReadError, err)
	}
	return Decode(data, filepath.Ext(path), section)
}

// Decode configuration data in the format indicated by the extension. The
// extension includes the leading dot, as returned by filepath.Ext().
func Decode(data []byte, ext string, section string) (map[string]string, error) {
	switch strings.ToLower(ext) {
	case ".ini":
		return parseINI(data, section)

	case ".toml":
		var doc map[string]any
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, curated.Errorf(DecodeError, "toml", err)
		}
		return flatten(doc, section), nil

	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, curated.Errorf(DecodeError, "yaml", err)
		}
		return flatten(doc, section), nil
	}

	return nil, curated.Errorf(UnsupportedFormat, ext)
}

// flatten a decoded TOML or YAML document into a binding configuration.
// top-level scalar values come first, followed by the global table and then
// the game section
func flatten(doc map[string]any, section string) map[string]string {
	cfg := make(map[string]string)

	for k, v := range doc {
		if _, ok := v.(map[string]any); ok {
			continue
		}
		if s, ok := scalar(v); ok {
			cfg[k] = s
		}
	}

	merge := func(name string) {
		if name == "" {
			return
		}
		for k, v := range doc {
			if !strings.EqualFold(k, name) {
				continue
			}
			if tbl, ok := v.(map[string]any); ok {
				for tk, tv := range tbl {
					if s, ok := scalar(tv); ok {
						cfg[tk] = s
					}
				}
			}
		}
	}

	merge(GlobalSection)
	if !strings.EqualFold(section, GlobalSection) {
		merge(section)
	}

	return cfg
}

// scalar returns the string form of a decoded value. lists and tables are not
// scalars
func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}
