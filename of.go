package gregorian

/*
of.go contains the "ordinal plus flags" codec: a single scalar packing
a day-of-year alongside its yearFlags tag.
*/

/*
of packs ordinal<<4 | flags. A value is valid when its ordinal falls
within 1..=ndays for the embedded flags; arithmetic such as succ and
pred may step outside that window, which callers detect via valid and
resolve by rolling into the adjacent year.
*/
type of uint32

func newOf(ordinal int, fl yearFlags) (of, bool) {
	// reject ordinals outside the field width before packing; a
	// negative or vast ordinal would wrap modulo 2^32 and could
	// alias a small ordinal that validates
	if ordinal < 1 || ordinal > 366 {
		return 0, false
	}

	o := of(uint32(ordinal)<<flagsBits | uint32(fl))
	return o, o.valid()
}

func (r of) valid() bool {
	o := r.ordinal()
	return 1 <= o && o <= r.flags().ndays()
}

func (r of) ordinal() int { return int(r >> flagsBits) }

func (r of) flags() yearFlags { return yearFlags(uint32(r) & flagsMask) }

func (r of) withOrdinal(ordinal int) (of, bool) {
	return newOf(ordinal, r.flags())
}

/*
weekday returns the weekday of the receiver; the flags tag stores the
weekday of ordinal day zero, so the sum of the two reduces modulo
seven to the weekday of the ordinal itself.
*/
func (r of) weekday() Weekday {
	return Weekday((r.ordinal() + int(uint8(r.flags())&weekdayBitMask)) % 7)
}

/*
succ steps one day forward within the same year. The result is
invalid past December 31, signalling the caller to roll into the
following year.
*/
func (r of) succ() of { return r + 1<<flagsBits }

/*
pred steps one day backward within the same year. The result is
invalid before January 1, signalling the caller to roll into the
preceding year.
*/
func (r of) pred() of { return r - 1<<flagsBits }

/*
toMdf converts the receiver to the month/day representation via a
short scan of the cumulative month table. Only meaningful for valid
receivers.
*/
func (r of) toMdf() mdf {
	ord, fl := r.ordinal(), r.flags()
	cumul := cumulDays(fl)

	month := 1
	for month < 12 && ord > cumul[month] {
		month++
	}

	m, _ := newMdf(month, ord-cumul[month-1], fl)
	return m
}
