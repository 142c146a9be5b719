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

// Package digest computes a digest of a recording. Two recordings with the
// same digest are identical, which makes the digest a convenient way of
// checking that a recording has not changed between releases or between
// machines.
//
// The digest is a SHA-1 value and matches the output of sha1sum for the same
// WAV file.
package digest
