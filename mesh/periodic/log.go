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

package periodic

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger sets the logger used for diagnostics. It is not safe to call
// concurrently with other functions in this package.
func SetLogger(l logrus.FieldLogger) { logger = l }

// checkDomain reports whether x lies in [0, Length).
// In debug builds it panics if it does not.
func checkDomain(op string, x float64) bool {
	if x >= 0 && x < Length {
		return true
	}
	if debug {
		panic(fmt.Sprintf("periodic: %s: coordinate %g is outside [0, 2π)", op, x))
	}
	return false
}
