/*
Copyright © 2026 the KMesh authors.
This file is part of KMesh.

KMesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

KMesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with KMesh.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command kmesh locates, shifts, samples and integrates functions on
// periodic k-space meshes.
package main

import (
	"os"

	"github.com/spatialmodel/kmesh/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
