package gregorian

/*
weekday.go contains the Weekday enumerated type and its helpers.
*/

/*
Weekday implements the day of the week as an enumerated type,
numbered from [Monday] (0) through [Sunday] (6) per ISO 8601.
*/
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	`Monday`,
	`Tuesday`,
	`Wednesday`,
	`Thursday`,
	`Friday`,
	`Saturday`,
	`Sunday`,
}

/*
String returns the English name of the receiver instance.
*/
func (r Weekday) String() string {
	if r > Sunday {
		return `Weekday(` + itoa(int(r)) + `)`
	}
	return weekdayNames[r]
}

/*
NumberFromMonday returns the receiver numbered from one (1) starting
at [Monday], per the ISO 8601 convention.
*/
func (r Weekday) NumberFromMonday() int { return int(r) + 1 }

/*
NumberFromSunday returns the receiver numbered from one (1) starting
at [Sunday].
*/
func (r Weekday) NumberFromSunday() int { return int(r+1)%7 + 1 }

/*
Succ returns the weekday immediately following the receiver.
*/
func (r Weekday) Succ() Weekday { return (r + 1) % 7 }

/*
Pred returns the weekday immediately preceding the receiver.
*/
func (r Weekday) Pred() Weekday { return (r + 6) % 7 }
