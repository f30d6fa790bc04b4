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
	"bufio"
	"bytes"
	"strings"

	"github.com/jetsetilly/vinput/curated"
)

// BadINILine is returned when a line in an INI file cannot be parsed.
const BadINILine = "config: ini: line %d: %s"

// parseINI reads Supermodel style INI data. Section headers are written as
// [ Name ] and entries as Key = "value". Comments begin with a semicolon.
//
// Entries in the Global section are read first and entries in the named
// section override them. Entries in other sections are ignored. Section names
// are matched without regard to case.
func parseINI(data []byte, section string) (map[string]string, error) {
	global := make(map[string]string)
	game := make(map[string]string)

	// entries before the first section header are global
	current := global

	scanner := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())

		if i := commentStart(line); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, curated.Errorf(BadINILine, n, "unterminated section header")
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			switch {
			case strings.EqualFold(name, GlobalSection):
				current = global
			case section != "" && strings.EqualFold(name, section):
				current = game
			default:
				current = nil
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, curated.Errorf(BadINILine, n, "missing '='")
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, curated.Errorf(BadINILine, n, "missing key")
		}

		if current != nil {
			current[key] = unquote(strings.TrimSpace(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	for k, v := range game {
		global[k] = v
	}

	return global, nil
}

// commentStart returns the index of the first semicolon that is not inside a
// double quoted string. Returns -1 if there is no comment.
func commentStart(line string) int {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				return i
			}
		}
	}
	return -1
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
