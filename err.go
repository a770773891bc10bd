package gregorian

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "errors"

var mkerr func(string) error = errors.New

/*
date errors.
*/
var (
	errorYearRange      = dateErr{mkerr("year falls outside of the representable range")}
	errorMonthRange     = dateErr{mkerr("month must fall within 1..=12")}
	errorDayRange       = dateErr{mkerr("day must fall within the chosen month")}
	errorOrdinalRange   = dateErr{mkerr("ordinal day must fall within the chosen year")}
	errorWeekRange      = dateErr{mkerr("ISO week must fall within the chosen year")}
	errorWeekdayRange   = dateErr{mkerr("weekday must fall within Monday..=Sunday")}
	errorDayNumberRange = dateErr{mkerr("day number falls outside of the representable range")}
	errorDateOverflow   = dateErr{mkerr("date arithmetic overflowed the representable range")}
)

/*
duration errors.
*/
var (
	errorDurationOverflow     = durationErr{mkerr("duration arithmetic overflowed")}
	errorDurationZeroDivisor  = durationErr{mkerr("zero divisor")}
	errorDurationUnitOverflow = durationErr{mkerr("whole-unit total exceeds the bounds of int64")}
	errorDurationStdRange     = durationErr{mkerr("duration exceeds the bounds of time.Duration")}
)

/*
types which implement the error interface.
*/
type (
	constraintErr struct{ e error }
	dateErr       struct{ e error }
	durationErr   struct{ e error }
)

func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }

func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r dateErr) Error() string       { return `DATE ERROR: ` + r.e.Error() }
func (r durationErr) Error() string   { return `DURATION ERROR: ` + r.e.Error() }

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case Date:
			b.WriteString(v.String())
		case Duration:
			b.WriteString(v.String())
		case Weekday:
			b.WriteString(v.String())
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}

	return mkerr(b.String())
}
