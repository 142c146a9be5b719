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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// name of the resource directory when it is found in the current directory.
const localConfigDir = ".tapecode"

// name of the resource directory inside the user's config directory.
const userConfigDir = "tapecode"

// ResourcePath returns the path to a resource file in the subPth directory of
// the resource directory. Either argument can be empty. The directory part of
// the path is created if it does not already exist; the file is not.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	if _, err := os.Stat(localConfigDir); err == nil {
		pth := filepath.Join(localConfigDir, subPth)
		return pth, os.MkdirAll(pth, 0700)
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(cnf, userConfigDir, subPth)
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	return pth, os.MkdirAll(pth, 0700)
}
