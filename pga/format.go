// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import (
	"strconv"
	"strings"
)

// formatEpsilon hides coefficients that are rounding noise.
const formatEpsilon = 1e-5

// String formats m as a sum of its non-negligible terms, e.g.
// "1 + 2e0 + -3e12". The zero multivector formats as "0".
func (m Multivector) String() string {
	var sb strings.Builder
	for i, c := range m {
		if c <= formatEpsilon && c >= -formatEpsilon {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		s := strconv.FormatFloat(c, 'f', 7, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		sb.WriteString(s)
		if i > 0 {
			sb.WriteString(BasisNames[i])
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
