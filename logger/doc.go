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

// Package logger is the central logging facility. Entries are made up of a
// tag, identifying the part of the program making the entry, and a detail
// string. Consecutive identical entries are folded into one entry with a
// repeat count.
//
// The central log is bounded. Only the most recent entries are kept.
//
// Per-event logging of touch or controller input should be avoided. Log state
// changes (devices connecting, configuration reloading) instead.
package logger
