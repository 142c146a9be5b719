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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags and arguments.
//
// Arguments are given to a Modes instance with NewArgs(). Flags for the
// current mode are added with the Add*() functions and Parse() processes
// them:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("ENCODE", "BATCH", "INSPECT")
//	p, err := md.Parse()
//
// If sub-modes have been added, the first argument after the flags is
// compared (case insensitively) against the sub-mode list and the selected
// mode is returned by Mode(). When no sub-mode matches, the first sub-mode in
// the list is selected and the argument is left for the mode to process.
//
// A mode prepares for its own flags by calling NewMode() and then Parse()
// again:
//
//	switch md.Mode() {
//	case "ENCODE":
//		md.NewMode()
//		out := md.AddString("out", "", "output file")
//		p, err := md.Parse()
//		...
//	}
//
// Help (-help or -h) is handled by Parse(), which prints the flags and
// sub-modes for the current mode to the Output writer and returns ParseHelp.
package modalflag
