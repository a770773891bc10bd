package gregorian

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	itoa    func(int) string         = strconv.Itoa
	fmtUint func(uint64, int) string = strconv.FormatUint
	strrpt  func(string, int) string = strings.Repeat
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

/*
divModFloor returns the floored quotient and matching remainder of
a/b, such that the remainder carries the sign of b rather than the
sign of a.
*/
func divModFloor(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

func divModFloorInt(a, b int) (int, int) {
	q, r := a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

/*
checkedAdd returns a+b alongside a success-indicative Boolean which
is false whenever the sum wrapped around the bounds of T.
*/
func checkedAdd[T constraints.Signed](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

/*
checkedSub returns a-b alongside a success-indicative Boolean which
is false whenever the difference wrapped around the bounds of T.
*/
func checkedSub[T constraints.Signed](a, b T) (T, bool) {
	s := a - b
	if (b < 0 && s < a) || (b > 0 && s > a) {
		return 0, false
	}
	return s, true
}

func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

/*
zeroPadUint returns u in base ten, left-padded with zeroes to no
fewer than width digits.
*/
func zeroPadUint(u uint64, width int) string {
	s := fmtUint(u, 10)
	if len(s) < width {
		s = strrpt("0", width-len(s)) + s
	}
	return s
}
