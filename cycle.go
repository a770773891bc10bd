package gregorian

/*
cycle.go contains the 400-year/146,097-day Gregorian cycle
arithmetic which linearizes every day-delta operation.
*/

const (
	daysPerCycle  = 146_097
	yearsPerCycle = 400
)

/*
yearDeltas[y] holds the number of leap days accumulated before year y
of the canonical 400-year block, with year 0 (a multiple of 400)
counting as leap. Index 400 is reachable when cycleToYo lands on the
final day of the block.
*/
var yearDeltas = func() (t [401]int) {
	for y := range t {
		t[y] = (y+3)/4 - (y+99)/100 + (y+399)/400
	}
	return
}()

/*
yoToCycle maps a (year within the 400-year block, ordinal) pair to a
zero-based day index within the 146,097-day block.
*/
func yoToCycle(yearMod400, ordinal int) int {
	return yearMod400*365 + yearDeltas[yearMod400] + ordinal - 1
}

/*
cycleToYo is the exact inverse of yoToCycle; cycle must reside within
0..=146,096. The candidate year from plain division by 365 is at most
one too high, corrected through a single table comparison rather than
iteration.
*/
func cycleToYo(cycle int) (yearMod400, ordinal int) {
	yearMod400 = cycle / 365
	ordinal0 := cycle % 365

	delta := yearDeltas[yearMod400]
	if ordinal0 < delta {
		yearMod400--
		ordinal0 += 365 - yearDeltas[yearMod400]
	} else {
		ordinal0 -= delta
	}

	return yearMod400, ordinal0 + 1
}
