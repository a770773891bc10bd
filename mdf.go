package gregorian

/*
mdf.go contains the "month plus day plus flags" codec and the month
length tables shared with the of codec.
*/

/*
mdf packs month<<9 | day<<4 | flags. A value is valid when month
falls within 1..=12 and day within 1..=monthLen for the embedded
flags' leap status.
*/
type mdf uint32

const (
	mdfDayShift   uint32 = flagsBits
	mdfMonthShift uint32 = flagsBits + 5
)

/*
cumulative day counts preceding each month, for common and leap
years; index i holds the days before month i+1, index 12 the year
length. Exact at every month boundary.
*/
var (
	cumulDaysCommon = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	cumulDaysLeap   = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

func cumulDays(fl yearFlags) *[13]int {
	if fl.isLeapYear() {
		return &cumulDaysLeap
	}
	return &cumulDaysCommon
}

func monthLen(month int, leap bool) int {
	if leap {
		return cumulDaysLeap[month] - cumulDaysLeap[month-1]
	}
	return cumulDaysCommon[month] - cumulDaysCommon[month-1]
}

func newMdf(month, day int, fl yearFlags) (mdf, bool) {
	// the fields must fit their bit widths before packing; a day
	// beyond five bits would spill into the month field and could
	// land on a pair that validates
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}

	m := mdf(uint32(month)<<mdfMonthShift |
		uint32(day)<<mdfDayShift | uint32(fl))
	return m, m.valid()
}

func (r mdf) valid() bool {
	m, d := r.month(), r.day()
	if m < 1 || m > 12 {
		return false
	}
	return 1 <= d && d <= monthLen(m, r.flags().isLeapYear())
}

func (r mdf) month() int { return int(r >> mdfMonthShift) }

func (r mdf) day() int { return int(r>>mdfDayShift) & 0x1f }

func (r mdf) flags() yearFlags { return yearFlags(uint32(r) & flagsMask) }

/*
withMonth returns a copy of the receiver bearing the given month,
re-validated against the tables.
*/
func (r mdf) withMonth(month int) (mdf, bool) {
	return newMdf(month, r.day(), r.flags())
}

/*
withDay returns a copy of the receiver bearing the given day,
re-validated against the tables.
*/
func (r mdf) withDay(day int) (mdf, bool) {
	return newMdf(r.month(), day, r.flags())
}

/*
toOf converts the receiver to the ordinal representation. The
Boolean is false for invalid receivers.
*/
func (r mdf) toOf() (of, bool) {
	if !r.valid() {
		return 0, false
	}
	fl := r.flags()
	return newOf(cumulDays(fl)[r.month()-1]+r.day(), fl)
}
