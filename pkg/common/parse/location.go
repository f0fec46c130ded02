/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Location is a span of bytes within the scanned source. Line is the 1-based
// line of Start.
type Location struct {
	Start int
	End   int
	Line  int
}

// Width returns the number of bytes covered by the location
func (l Location) Width() int {
	if l.End < l.Start {
		return 0
	}
	return l.End - l.Start
}
