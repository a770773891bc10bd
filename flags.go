package gregorian

/*
flags.go contains the yearFlags classification tag upon which every
calendar conversion in this package depends.
*/

/*
yearFlags packs the two properties of a proleptic-Gregorian year that
the calendar algorithms consume: its leap status and the weekday upon
which its days fall.

The layout is c<<3 | d, where c is 1 for a common year and 0 for a
leap year, and d (0..=6, Monday = 0) is the weekday of "ordinal day
zero", i.e. December 31 of the preceding year. Fourteen values occur
in practice: 7 weekday offsets times the two leap classes.

The tag occupies the low four bits of the of and mdf codecs, and of
the packed [Date] scalar.
*/
type yearFlags uint8

const (
	flagsBits uint32 = 4
	flagsMask uint32 = 1<<flagsBits - 1

	commonYearBit  uint8 = 0b1000
	weekdayBitMask uint8 = 0b0111
)

/*
yearToFlags maps a year reduced modulo 400 to its yearFlags tag. The
weekday pattern of the Gregorian calendar repeats exactly every 400
years (146,097 days is divisible by seven), so the table is closed.
*/
var yearToFlags = func() (t [400]yearFlags) {
	for y := range t {
		t[y] = computeYearFlags(y)
	}
	return
}()

/*
computeYearFlags derives the yearFlags tag for a year within the
canonical 0..=399 block. The leap rule is the standard Gregorian
one: divisible by four, except centuries not divisible by 400. The
weekday offset is derived arithmetically from the day-number identity
that January 1 of year 1 is a Monday, deliberately independent of the
ISO week-date layer.
*/
func computeYearFlags(y int) yearFlags {
	var c uint8 = commonYearBit
	if y%4 == 0 && (y%100 != 0 || y == 0) {
		c = 0
	}

	// days from January 1 of year 0 to January 1 of year y
	jan1 := 365*y + (y+3)/4 - (y+99)/100 + (y+399)/400

	// jan1 of year 1 sits at index 366 and is a Monday; ordinal
	// day zero of year y therefore sits one day before jan1.
	d := uint8((jan1 + 4) % 7)

	return yearFlags(c | d)
}

func yearFlagsFromYear(year int) yearFlags {
	_, mod := divModFloorInt(year, 400)
	return yearToFlags[mod]
}

/*
yearFlagsFromYearMod400 is the pre-reduced variant used on the cycle
arithmetic hot path; y must already reside within 0..=399.
*/
func yearFlagsFromYearMod400(y int) yearFlags {
	return yearToFlags[y]
}

func (r yearFlags) isLeapYear() bool {
	return uint8(r)&commonYearBit == 0
}

/*
ndays returns the number of days in a year bearing the receiver tag,
either 365 or 366.
*/
func (r yearFlags) ndays() int {
	if r.isLeapYear() {
		return 366
	}
	return 365
}

/*
isoweekDelta returns the offset added to an ordinal so that integer
division by seven yields the raw ISO week number. The return spans
3..=9.
*/
func (r yearFlags) isoweekDelta() int {
	d := int(uint8(r) & weekdayBitMask)
	if d < 3 {
		d += 7
	}
	return d
}

/*
nisoweeks returns the number of ISO 8601 weeks, either 52 or 53, in a
year bearing the receiver tag. A year holds 53 weeks when January 1
falls on a Thursday, or on a Wednesday of a leap year.
*/
func (r yearFlags) nisoweeks() int {
	jan1 := (1 + int(uint8(r)&weekdayBitMask)) % 7
	if jan1 == 3 || (jan1 == 2 && r.isLeapYear()) {
		return 53
	}
	return 52
}
