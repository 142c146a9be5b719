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

// Package logger is the central log for Tapecode. Entries are made up of a
// tag, which names the part of the program making the entry, and a detail
// string.
//
// Identical consecutive entries are folded into a single entry with a repeat
// count. The number of entries kept is bounded and the oldest entries are
// dropped first.
//
// Most code will use the package level Log() and Logf() functions, which add
// entries to the one central logger. The Logger type can be instantiated for
// testing or where a separate log is useful.
package logger
