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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values.
//
// The pattern is retained and can be tested for with the Is() and Has()
// functions. Is() checks the outermost error only. Has() checks the entire
// chain of curated errors:
//
//	e := curated.Errorf("config: %v", curated.Errorf(config.UnsupportedFormat, ".xml"))
//
//	curated.Is(e, config.UnsupportedFormat)  // false
//	curated.Has(e, config.UnsupportedFormat) // true
//
// Sentinel patterns should be stored as a const string in the package that
// creates the error.
//
// The Error() function removes duplicate adjacent parts of the message, parts
// being separated by ": ". This means that wrapping an error with a prefix that
// it already has does not result in a stuttering message.
package curated
