package gregorian

/*
date.go contains the Date value type, its constructors, accessors
and checked/panicking arithmetic surfaces.
*/

import "time"

const (
	// MinYear is the minimum representable year.
	MinYear = -(1 << 18)

	// MaxYear is the maximum representable year.
	MaxYear = 1<<18 - 1
)

const (
	dateYearShift = 13
	dateOfMask    = 1<<dateYearShift - 1
)

/*
Months implements a whole-month calendar delta for use with the
[Date.CheckedAddMonths] and [Date.CheckedSubMonths] methods and
their panicking counterparts.
*/
type Months uint32

/*
Days implements a whole-day calendar delta for use with the
[Date.CheckedAddDays] and [Date.CheckedSubDays] methods and their
panicking counterparts.
*/
type Days uint64

/*
Date implements a day on the proleptic Gregorian calendar spanning
years [MinYear] through [MaxYear] inclusive.

The internal representation is a single scalar packing the year above
an ordinal-plus-flags codec, so the natural order of the scalar
coincides with chronological order; comparisons through [Date.Eq],
[Date.Lt], [Date.Compare] et al cost one integer comparison.

Instances are immutable values with copy semantics; every arithmetic
method returns a new instance and is safe for unguarded concurrent
use. The zero value does not describe a meaningful date; use one of
the constructors.
*/
type Date struct {
	ymdf int32
}

/*
MinDate and MaxDate bound the entire representable date space:
January 1 of [MinYear] and December 31 of [MaxYear] respectively.
*/
var (
	MinDate = func() Date {
		o, _ := newOf(1, yearFlagsFromYear(MinYear))
		return packDate(MinYear, o)
	}()

	MaxDate = func() Date {
		fl := yearFlagsFromYear(MaxYear)
		o, _ := newOf(fl.ndays(), fl)
		return packDate(MaxYear, o)
	}()
)

var (
	minDayNumber = MinDate.DayNumber()
	maxDayNumber = MaxDate.DayNumber()
)

func packDate(year int, o of) Date {
	return Date{int32(year)<<dateYearShift | int32(o)}
}

func applyDateConstraints(d Date, cons []Constraint[Date]) (Date, error) {
	if len(cons) > 0 {
		var group ConstraintGroup[Date] = cons
		if err := group.Constrain(d); err != nil {
			return Date{}, err
		}
	}
	return d, nil
}

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to resolve a calendar (year, month, day) triple.

An error is returned when the year falls outside of
[MinYear]..=[MaxYear], the month outside of 1..=12, or the day outside
of the chosen month -- February 29 of a common year included.

See also [MustNewDate].
*/
func NewDate(year, month, day int, constraints ...Constraint[Date]) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errorYearRange
	}
	if month < 1 || month > 12 {
		return Date{}, errorMonthRange
	}

	m, ok := newMdf(month, day, yearFlagsFromYear(year))
	if !ok {
		return Date{}, errorDayRange
	}

	o, _ := m.toOf()
	return applyDateConstraints(packDate(year, o), constraints)
}

/*
MustNewDate returns an instance of [Date] and panics if [NewDate]
returned an error during processing.
*/
func MustNewDate(year, month, day int, constraints ...Constraint[Date]) Date {
	d, err := NewDate(year, month, day, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

func newDateFromYo(year, ordinal int, constraints ...Constraint[Date]) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errorYearRange
	}

	o, ok := newOf(ordinal, yearFlagsFromYear(year))
	if !ok {
		return Date{}, errorOrdinalRange
	}

	return applyDateConstraints(packDate(year, o), constraints)
}

/*
NewDateFromOrdinal returns an instance of [Date] alongside an error
following an attempt to resolve an ordinal (year, day-of-year) pair.
The ordinal must fall within 1..=365, or 1..=366 for leap years.

See also [MustNewDateFromOrdinal].
*/
func NewDateFromOrdinal(year, ordinal int, constraints ...Constraint[Date]) (Date, error) {
	return newDateFromYo(year, ordinal, constraints...)
}

/*
MustNewDateFromOrdinal returns an instance of [Date] and panics if
[NewDateFromOrdinal] returned an error during processing.
*/
func MustNewDateFromOrdinal(year, ordinal int, constraints ...Constraint[Date]) Date {
	d, err := NewDateFromOrdinal(year, ordinal, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

/*
NewDateFromDayNumber returns an instance of [Date] alongside an error
following an attempt to resolve a linear day number, with day one (1)
equal to January 1 of year 1. Day numbers serve as the interchange
format with any external epoch-based representation.

See also [Date.DayNumber] and [MustNewDateFromDayNumber].
*/
func NewDateFromDayNumber(n int64, constraints ...Constraint[Date]) (Date, error) {
	if n < minDayNumber || n > maxDayNumber {
		return Date{}, errorDayNumberRange
	}

	cycleDiv, cycle := divModFloor(n+365, daysPerCycle)
	yearMod400, ordinal := cycleToYo(int(cycle))
	year := int(cycleDiv)*yearsPerCycle + yearMod400

	o, _ := newOf(ordinal, yearFlagsFromYearMod400(yearMod400))
	return applyDateConstraints(packDate(year, o), constraints)
}

/*
MustNewDateFromDayNumber returns an instance of [Date] and panics if
[NewDateFromDayNumber] returned an error during processing.
*/
func MustNewDateFromDayNumber(n int64, constraints ...Constraint[Date]) Date {
	d, err := NewDateFromDayNumber(n, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

/*
NewDateFromTime returns an instance of [Date] alongside an error
following an attempt to resolve the calendar date of t within its
own location.
*/
func NewDateFromTime(t time.Time, constraints ...Constraint[Date]) (Date, error) {
	y, m, d := t.Date()
	return NewDate(y, int(m), d, constraints...)
}

func (r Date) year() int { return int(r.ymdf >> dateYearShift) }

func (r Date) of() of { return of(uint32(r.ymdf) & dateOfMask) }

func (r Date) mdf() mdf { return r.of().toMdf() }

/*
Year returns the year number of the receiver instance.
*/
func (r Date) Year() int { return r.year() }

/*
Month returns the month number, 1 through 12, of the receiver
instance.
*/
func (r Date) Month() int { return r.mdf().month() }

/*
Day returns the day-of-month number, 1 through 31, of the receiver
instance.
*/
func (r Date) Day() int { return r.mdf().day() }

/*
Ordinal returns the day-of-year number, 1 through 365 or 366, of the
receiver instance.
*/
func (r Date) Ordinal() int { return r.of().ordinal() }

/*
Weekday returns the [Weekday] upon which the receiver instance falls.
*/
func (r Date) Weekday() Weekday { return r.of().weekday() }

/*
ISOWeek returns the ISO 8601 year and week number owning the receiver
instance. The ISO year may differ from [Date.Year] by one in either
direction during the first or final days of a Gregorian year.
*/
func (r Date) ISOWeek() (isoYear, week int) {
	return isoWeekFromYof(r.year(), r.of())
}

/*
IsLeapYear returns a Boolean value indicative of whether the receiver
falls within a leap year.
*/
func (r Date) IsLeapYear() bool { return r.of().flags().isLeapYear() }

/*
IsZero returns a Boolean value indicative of whether the receiver is
the (meaningless) zero value of the [Date] type.
*/
func (r Date) IsZero() bool { return r.ymdf == 0 }

/*
DayNumber returns the linear day number of the receiver instance,
with day one (1) equal to January 1 of year 1 and day zero (0) to
December 31 of year 0.
*/
func (r Date) DayNumber() int64 {
	yearDiv, yearMod := divModFloorInt(r.year(), yearsPerCycle)
	return int64(yearDiv)*daysPerCycle +
		int64(yoToCycle(yearMod, r.Ordinal())) - 365
}

/*
Cast returns the stdlib [time.Time] representation of the receiver
instance: midnight UTC of the day in question.
*/
func (r Date) Cast() time.Time {
	m := r.mdf()
	return time.Date(r.year(), time.Month(m.month()), m.day(),
		0, 0, 0, 0, time.UTC)
}

/*
String returns the ISO 8601 string representation (y-m-d) of the
receiver instance. Years beyond 9999 carry an explicit sign.
*/
func (r Date) String() string {
	b := newStrBuilder()

	y := r.year()
	if y < 0 {
		b.WriteByte('-')
		y = -y
	} else if y > 9999 {
		b.WriteByte('+')
	}
	b.WriteString(zeroPadUint(uint64(y), 4))

	m := r.mdf()
	b.WriteByte('-')
	b.WriteString(zeroPadUint(uint64(m.month()), 2))
	b.WriteByte('-')
	b.WriteString(zeroPadUint(uint64(m.day()), 2))

	return b.String()
}

/*
diffDays advances the receiver by a signed number of whole days via
the cycle representation. The year is bounds-checked before any codec
validation so that a wrapped year can never validate silently.
*/
func (r Date) diffDays(days int64) (Date, error) {
	yearDiv, yearMod := divModFloorInt(r.year(), yearsPerCycle)

	cycle := int64(yoToCycle(yearMod, r.Ordinal())) + days
	cycleDiv, cycleMod := divModFloor(cycle, daysPerCycle)

	year := (int64(yearDiv) + cycleDiv) * yearsPerCycle
	yearMod400, ordinal := cycleToYo(int(cycleMod))
	year += int64(yearMod400)

	if year < MinYear || year > MaxYear {
		return Date{}, errorDateOverflow
	}

	o, _ := newOf(ordinal, yearFlagsFromYearMod400(yearMod400))
	return packDate(int(year), o), nil
}

/*
CheckedAddDays returns the date the given number of days after the
receiver alongside an error. The delta is converted to a signed
duration in seconds up front, so a delta beyond the seconds range
fails before any date computation occurs.

See also [Date.AddDays].
*/
func (r Date) CheckedAddDays(days Days) (Date, error) {
	if days > maxInt64/secsPerDay {
		return Date{}, errorDateOverflow
	}
	return r.CheckedAddSigned(DurationSeconds(int64(days) * secsPerDay))
}

/*
CheckedSubDays returns the date the given number of days before the
receiver alongside an error.

See also [Date.SubDays].
*/
func (r Date) CheckedSubDays(days Days) (Date, error) {
	if days > maxInt64/secsPerDay {
		return Date{}, errorDateOverflow
	}
	return r.CheckedSubSigned(DurationSeconds(int64(days) * secsPerDay))
}

/*
CheckedAddSigned returns the date the given signed duration after the
receiver alongside an error. The duration is truncated toward zero to
whole days; the error is non-nil only when the result would fall
outside of [MinDate]..=[MaxDate].

See also [Date.Add].
*/
func (r Date) CheckedAddSigned(dur Duration) (Date, error) {
	return r.diffDays(dur.WholeDays())
}

/*
CheckedSubSigned returns the date the given signed duration before
the receiver alongside an error.

See also [Date.Sub].
*/
func (r Date) CheckedSubSigned(dur Duration) (Date, error) {
	return r.diffDays(-dur.WholeDays())
}

/*
diffMonths advances the receiver by a signed number of whole months.
The delta is split into whole years and a residual month offset with
carry; the day-of-month is clamped to the final day of the target
month whenever it would otherwise overrun it.
*/
func (r Date) diffMonths(months int64) (Date, error) {
	years := months / 12
	left := months % 12

	year := int64(r.year()) + years
	month0 := int64(r.Month()) - 1 + left
	if month0 < 0 {
		year--
		month0 += 12
	} else if month0 > 11 {
		year++
		month0 -= 12
	}

	if year < MinYear || year > MaxYear {
		return Date{}, errorDateOverflow
	}

	month := int(month0) + 1
	fl := yearFlagsFromYear(int(year))

	// clamp the day to the final day of the target month; a
	// month delta never produces an invalid date nor an error
	// on this account
	day := r.Day()
	if last := monthLen(month, fl.isLeapYear()); day > last {
		day = last
	}

	m, _ := newMdf(month, day, fl)
	o, _ := m.toOf()
	return packDate(int(year), o), nil
}

/*
CheckedAddMonths returns the date the given number of calendar months
after the receiver alongside an error, clamping the day-of-month to
the final day of the target month when needed, e.g. January 31 plus
one month yields February 28 or 29. This clamping is the key semantic
difference from signed-duration arithmetic, which never clamps.

See also [Date.AddMonths].
*/
func (r Date) CheckedAddMonths(months Months) (Date, error) {
	return r.diffMonths(int64(months))
}

/*
CheckedSubMonths returns the date the given number of calendar months
before the receiver alongside an error, clamping the day-of-month as
described by [Date.CheckedAddMonths].

See also [Date.SubMonths].
*/
func (r Date) CheckedSubMonths(months Months) (Date, error) {
	return r.diffMonths(-int64(months))
}

/*
Succ returns the date exactly one calendar day after the receiver
alongside an error which is non-nil only for [MaxDate].
*/
func (r Date) Succ() (Date, error) {
	if o := r.of().succ(); o.valid() {
		return packDate(r.year(), o), nil
	}

	d, err := newDateFromYo(r.year()+1, 1)
	if err != nil {
		err = errorDateOverflow
	}
	return d, err
}

/*
Pred returns the date exactly one calendar day before the receiver
alongside an error which is non-nil only for [MinDate].
*/
func (r Date) Pred() (Date, error) {
	if o := r.of().pred(); o.valid() {
		return packDate(r.year(), o), nil
	}

	year := r.year() - 1
	if year < MinYear {
		return Date{}, errorDateOverflow
	}

	fl := yearFlagsFromYear(year)
	o, _ := newOf(fl.ndays(), fl)
	return packDate(year, o), nil
}

/*
SignedDurationSince returns the exact signed [Duration] elapsed from
x to the receiver. The entire representable date range fits within
the [Duration] range expressed in days-as-seconds, so the operation
is total and never overflows.
*/
func (r Date) SignedDurationSince(x Date) Duration {
	yearDiv1, yearMod1 := divModFloorInt(r.year(), yearsPerCycle)
	yearDiv2, yearMod2 := divModFloorInt(x.year(), yearsPerCycle)

	cycle1 := int64(yoToCycle(yearMod1, r.Ordinal()))
	cycle2 := int64(yoToCycle(yearMod2, x.Ordinal()))

	days := int64(yearDiv1-yearDiv2)*daysPerCycle + (cycle1 - cycle2)
	return DurationSeconds(days * secsPerDay)
}

/*
YearsSince returns the number of whole years elapsed since base, and
a Boolean which is false when base postdates the receiver. The count
truncates on a (month, day) tuple comparison, so a February 29 base
observes its anniversary upon March 1 of common years.
*/
func (r Date) YearsSince(base Date) (int, bool) {
	years := r.year() - base.year()

	m, bm := r.Month(), base.Month()
	if m < bm || (m == bm && r.Day() < base.Day()) {
		years--
	}

	if years < 0 {
		return 0, false
	}
	return years, true
}

/*
Compare returns an integer comparing the receiver to x
chronologically: -1 when earlier, 0 when equal, +1 when later.
*/
func (r Date) Compare(x Date) int {
	switch {
	case r.ymdf < x.ymdf:
		return -1
	case r.ymdf > x.ymdf:
		return 1
	}
	return 0
}

/*
Eq returns true if the receiver and x describe the same day.
*/
func (r Date) Eq(x Date) bool { return r.ymdf == x.ymdf }

/*
Ne returns true if the receiver and x describe different days.
*/
func (r Date) Ne(x Date) bool { return r.ymdf != x.ymdf }

/*
Lt returns true if the receiver strictly precedes x.
*/
func (r Date) Lt(x Date) bool { return r.ymdf < x.ymdf }

/*
Le returns true if the receiver precedes or equals x.
*/
func (r Date) Le(x Date) bool { return r.ymdf <= x.ymdf }

/*
Gt returns true if the receiver strictly follows x.
*/
func (r Date) Gt(x Date) bool { return r.ymdf > x.ymdf }

/*
Ge returns true if the receiver follows or equals x.
*/
func (r Date) Ge(x Date) bool { return r.ymdf >= x.ymdf }

/*
Add returns the date the given signed duration after the receiver
and panics if [Date.CheckedAddSigned] returned an error. Intended
for call sites whose inputs are already range-checked by
construction.
*/
func (r Date) Add(dur Duration) Date {
	d, err := r.CheckedAddSigned(dur)
	if err != nil {
		panic(mkerr("Date + Duration overflowed"))
	}
	return d
}

/*
Sub returns the date the given signed duration before the receiver
and panics if [Date.CheckedSubSigned] returned an error.
*/
func (r Date) Sub(dur Duration) Date {
	d, err := r.CheckedSubSigned(dur)
	if err != nil {
		panic(mkerr("Date - Duration overflowed"))
	}
	return d
}

/*
AddDays returns the date the given number of days after the receiver
and panics if [Date.CheckedAddDays] returned an error.
*/
func (r Date) AddDays(days Days) Date {
	d, err := r.CheckedAddDays(days)
	if err != nil {
		panic(mkerr("Date + Days overflowed"))
	}
	return d
}

/*
SubDays returns the date the given number of days before the receiver
and panics if [Date.CheckedSubDays] returned an error.
*/
func (r Date) SubDays(days Days) Date {
	d, err := r.CheckedSubDays(days)
	if err != nil {
		panic(mkerr("Date - Days overflowed"))
	}
	return d
}

/*
AddMonths returns the date the given number of months after the
receiver and panics if [Date.CheckedAddMonths] returned an error.
*/
func (r Date) AddMonths(months Months) Date {
	d, err := r.CheckedAddMonths(months)
	if err != nil {
		panic(mkerr("Date + Months overflowed"))
	}
	return d
}

/*
SubMonths returns the date the given number of months before the
receiver and panics if [Date.CheckedSubMonths] returned an error.
*/
func (r Date) SubMonths(months Months) Date {
	d, err := r.CheckedSubMonths(months)
	if err != nil {
		panic(mkerr("Date - Months overflowed"))
	}
	return d
}
