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

// Package config loads binding configurations from disk. A binding
// configuration maps action names to mapping strings, for example:
//
//	InputCoin1 = "KEY_5,JOY1_BUTTON9"
//
// Three file formats are supported, chosen by the file extension: the INI
// format used by Supermodel (.ini), TOML (.toml) and YAML (.yaml or .yml).
//
// Every format has a global part and optional per-game sections. Values in the
// game section override values in the global part. In the INI format the
// global part is the [Global] section. In TOML and YAML the global part is the
// top-level keys and any table called Global.
//
// The Watcher type reloads a configuration when the file changes.
package config
