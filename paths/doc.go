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

// Package paths contains functions to prepare paths to Tapecode resources,
// such as the preferences file.
//
// The policy of ResourcePath() is simple: if the directory ".tapecode" is
// present in the program's current directory then that is the base path that
// will be used. If it is not present then the "tapecode" directory inside the
// user's config directory is used (see os.UserConfigDir() for details). On a
// modern Linux system, the preferences file will be:
//
//	/home/user/.config/tapecode/tapecode.yaml
package paths
