package gregorian

/*
isoweek.go contains the ISO 8601 week-date conversions in both
directions. A week belongs to the year containing its Thursday,
equivalently the year containing at least four of its days.
*/

/*
NewDateFromISOWeek returns an instance of [Date] alongside an error
following an attempt to resolve an ISO 8601 week date. The week must
fall within 1..=52/53 depending upon the ISO year, and wd within
[Monday]..=[Sunday].

The first and last ISO weeks of a year may straddle a Gregorian year
boundary; the crossing is resolved explicitly rather than by ordinal
wrap-around.

See also [MustNewDateFromISOWeek].
*/
func NewDateFromISOWeek(isoYear, week int, wd Weekday, constraints ...Constraint[Date]) (Date, error) {
	fl := yearFlagsFromYear(isoYear)

	if week < 1 || week > fl.nisoweeks() {
		return Date{}, errorWeekRange
	}
	if wd > Sunday {
		return Date{}, errorWeekdayRange
	}

	weekord := week*7 + int(wd)
	delta := fl.isoweekDelta()

	var year, ordinal int
	switch {
	case weekord <= delta:
		// the date falls within the preceding Gregorian year
		year = isoYear - 1
		ordinal = weekord + yearFlagsFromYear(year).ndays() - delta
	case weekord-delta > fl.ndays():
		// the date falls within the following Gregorian year
		year = isoYear + 1
		ordinal = weekord - delta - fl.ndays()
	default:
		year = isoYear
		ordinal = weekord - delta
	}

	return newDateFromYo(year, ordinal, constraints...)
}

/*
MustNewDateFromISOWeek returns an instance of [Date] and panics if
[NewDateFromISOWeek] returned an error during processing.
*/
func MustNewDateFromISOWeek(isoYear, week int, wd Weekday, constraints ...Constraint[Date]) Date {
	d, err := NewDateFromISOWeek(isoYear, week, wd, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

/*
isoWeekFromYof derives the (ISO year, week) pair owning the given
ordinal-plus-flags value of the given Gregorian year. The raw week
from the delta-shifted ordinal lands below one when the ordinal
belongs to the final week of the preceding ISO year, and above
nisoweeks when it belongs to week one of the following ISO year.
*/
func isoWeekFromYof(year int, o of) (isoYear, week int) {
	rawweek := (o.ordinal() + o.flags().isoweekDelta()) / 7

	if rawweek < 1 {
		return year - 1, yearFlagsFromYear(year - 1).nisoweeks()
	}
	if rawweek > o.flags().nisoweeks() {
		return year + 1, 1
	}
	return year, rawweek
}
