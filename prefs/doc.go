// This file is part of Tapecode.
//
// Tapecode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapecode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapecode.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs loads and saves the Tapecode preferences file. The file is
// YAML and every field is optional:
//
//	sample_rate: 44100
//	leader: 5.0
//	trailer: 5.0
//	shape: square
//	workers: 4
//
// Missing fields take their default values, which for the encoder are those
// of a standard BASICODE recording. A missing file is not an error.
package prefs
