package gregorian

/*
duration.go contains the signed nanosecond-precision Duration value
type alongside its constructors, unit accessors and checked and
saturating arithmetic surfaces.
*/

import "time"

const (
	nanosPerSecond  = 1_000_000_000
	nanosPerMilli   = 1_000_000
	nanosPerMicro   = 1_000
	microsPerSecond = 1_000_000
	millisPerSecond = 1_000

	secsPerMinute = 60
	secsPerHour   = 3_600
	secsPerDay    = 86_400
	secsPerWeek   = 604_800
)

/*
Duration implements a signed span of time with nanosecond precision
and a range of roughly ±292 billion years, vastly exceeding stdlib
[time.Duration].

The representation is a whole-second count plus a fractional
nanosecond component; the two always carry the same sign and the
fraction always remains below one second in magnitude. Every
constructor and arithmetic method preserves this normalization.

Instances are immutable values with copy semantics and are safe for
unguarded concurrent use. The zero value is a valid zero-length span,
and is also available as [ZeroDuration].
*/
type Duration struct {
	seconds     int64
	nanoseconds int32
}

/*
ZeroDuration, MinDuration and MaxDuration are the zero-length span
and the two extremes of the representable range, respectively.
*/
var (
	ZeroDuration = Duration{}
	MinDuration  = Duration{minInt64, -(nanosPerSecond - 1)}
	MaxDuration  = Duration{maxInt64, nanosPerSecond - 1}
)

func applyDurationConstraints(d Duration, cons []Constraint[Duration]) (Duration, error) {
	if len(cons) > 0 {
		var group ConstraintGroup[Duration] = cons
		if err := group.Constrain(d); err != nil {
			return Duration{}, err
		}
	}
	return d, nil
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to normalize an arbitrary (seconds, nanoseconds)
pair: whole seconds carried by the nanosecond component migrate into
the second count, and the two components are brought to a common
sign. An error is returned only when the carried second count would
overflow int64.

See also [MustNewDuration].
*/
func NewDuration(seconds int64, nanoseconds int32, constraints ...Constraint[Duration]) (Duration, error) {
	secs, ok := checkedAdd(seconds, int64(nanoseconds)/nanosPerSecond)
	if !ok {
		return Duration{}, errorDurationOverflow
	}
	nanos := nanoseconds % nanosPerSecond

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}

	return applyDurationConstraints(Duration{secs, nanos}, constraints)
}

/*
MustNewDuration returns an instance of [Duration] and panics if
[NewDuration] returned an error during processing.
*/
func MustNewDuration(seconds int64, nanoseconds int32, constraints ...Constraint[Duration]) Duration {
	d, err := NewDuration(seconds, nanoseconds, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

/*
DurationWeeks returns the [Duration] spanning the given number of
whole weeks, and panics if the equivalent second count would overflow
int64. For a checked path, combine [DurationSeconds] with
[Duration.CheckedMul].
*/
func DurationWeeks(weeks int64) Duration {
	secs, ok := checkedMul64(weeks, secsPerWeek)
	if !ok {
		panic(errorDurationUnitOverflow)
	}
	return Duration{secs, 0}
}

/*
DurationDays returns the [Duration] spanning the given number of
whole days, and panics if the equivalent second count would overflow
int64.
*/
func DurationDays(days int64) Duration {
	secs, ok := checkedMul64(days, secsPerDay)
	if !ok {
		panic(errorDurationUnitOverflow)
	}
	return Duration{secs, 0}
}

/*
DurationHours returns the [Duration] spanning the given number of
whole hours, and panics if the equivalent second count would overflow
int64.
*/
func DurationHours(hours int64) Duration {
	secs, ok := checkedMul64(hours, secsPerHour)
	if !ok {
		panic(errorDurationUnitOverflow)
	}
	return Duration{secs, 0}
}

/*
DurationMinutes returns the [Duration] spanning the given number of
whole minutes, and panics if the equivalent second count would
overflow int64.
*/
func DurationMinutes(minutes int64) Duration {
	secs, ok := checkedMul64(minutes, secsPerMinute)
	if !ok {
		panic(errorDurationUnitOverflow)
	}
	return Duration{secs, 0}
}

/*
DurationSeconds returns the [Duration] spanning the given number of
whole seconds. The operation is total.
*/
func DurationSeconds(seconds int64) Duration {
	return Duration{seconds, 0}
}

/*
DurationMilliseconds returns the [Duration] spanning the given number
of milliseconds. The operation is total: every int64 millisecond
count is representable.
*/
func DurationMilliseconds(milliseconds int64) Duration {
	return Duration{
		milliseconds / millisPerSecond,
		int32(milliseconds%millisPerSecond) * nanosPerMilli,
	}
}

/*
DurationMicroseconds returns the [Duration] spanning the given number
of microseconds. The operation is total.
*/
func DurationMicroseconds(microseconds int64) Duration {
	return Duration{
		microseconds / microsPerSecond,
		int32(microseconds%microsPerSecond) * nanosPerMicro,
	}
}

/*
DurationNanoseconds returns the [Duration] spanning the given number
of nanoseconds. The operation is total.
*/
func DurationNanoseconds(nanoseconds int64) Duration {
	return Duration{
		nanoseconds / nanosPerSecond,
		int32(nanoseconds % nanosPerSecond),
	}
}

/*
NewDurationFromStd returns the [Duration] equivalent of the given
stdlib [time.Duration]. The operation is total, as the stdlib range
is a strict subset of the [Duration] range.
*/
func NewDurationFromStd(d time.Duration) Duration {
	return DurationNanoseconds(int64(d))
}

/*
Std returns the stdlib [time.Duration] equivalent of the receiver
alongside an error which is non-nil whenever the receiver exceeds
the roughly ±292 year stdlib range.
*/
func (r Duration) Std() (time.Duration, error) {
	ns, err := r.WholeNanoseconds()
	if err != nil {
		return 0, errorDurationStdRange
	}
	return time.Duration(ns), nil
}

/*
WholeWeeks returns the truncated number of whole weeks spanned by the
receiver instance.
*/
func (r Duration) WholeWeeks() int64 { return r.seconds / secsPerWeek }

/*
WholeDays returns the truncated number of whole days spanned by the
receiver instance.
*/
func (r Duration) WholeDays() int64 { return r.seconds / secsPerDay }

/*
WholeHours returns the truncated number of whole hours spanned by the
receiver instance.
*/
func (r Duration) WholeHours() int64 { return r.seconds / secsPerHour }

/*
WholeMinutes returns the truncated number of whole minutes spanned by
the receiver instance.
*/
func (r Duration) WholeMinutes() int64 { return r.seconds / secsPerMinute }

/*
WholeSeconds returns the number of whole seconds spanned by the
receiver instance.
*/
func (r Duration) WholeSeconds() int64 { return r.seconds }

/*
WholeMilliseconds returns the truncated number of whole milliseconds
spanned by the receiver alongside an error which is non-nil whenever
the count is too vast for int64.
*/
func (r Duration) WholeMilliseconds() (int64, error) {
	ms, ok := checkedMul64(r.seconds, millisPerSecond)
	if !ok {
		return 0, errorDurationUnitOverflow
	}

	ms, ok = checkedAdd(ms, int64(r.nanoseconds/nanosPerMilli))
	if !ok {
		return 0, errorDurationUnitOverflow
	}
	return ms, nil
}

/*
WholeMicroseconds returns the truncated number of whole microseconds
spanned by the receiver alongside an error which is non-nil whenever
the count is too vast for int64.
*/
func (r Duration) WholeMicroseconds() (int64, error) {
	us, ok := checkedMul64(r.seconds, microsPerSecond)
	if !ok {
		return 0, errorDurationUnitOverflow
	}

	us, ok = checkedAdd(us, int64(r.nanoseconds/nanosPerMicro))
	if !ok {
		return 0, errorDurationUnitOverflow
	}
	return us, nil
}

/*
WholeNanoseconds returns the number of nanoseconds spanned by the
receiver alongside an error which is non-nil whenever the count is
too vast for int64.
*/
func (r Duration) WholeNanoseconds() (int64, error) {
	ns, ok := checkedMul64(r.seconds, nanosPerSecond)
	if !ok {
		return 0, errorDurationUnitOverflow
	}

	ns, ok = checkedAdd(ns, int64(r.nanoseconds))
	if !ok {
		return 0, errorDurationUnitOverflow
	}
	return ns, nil
}

/*
SubsecMilliseconds returns the millisecond count of the fractional
second component. The result carries the sign of the receiver and
always falls within -999..=999.
*/
func (r Duration) SubsecMilliseconds() int32 { return r.nanoseconds / nanosPerMilli }

/*
SubsecMicroseconds returns the microsecond count of the fractional
second component, within -999999..=999999.
*/
func (r Duration) SubsecMicroseconds() int32 { return r.nanoseconds / nanosPerMicro }

/*
SubsecNanoseconds returns the fractional second component in
nanoseconds, within -999999999..=999999999.
*/
func (r Duration) SubsecNanoseconds() int32 { return r.nanoseconds }

/*
IsZero returns a Boolean value indicative of a zero-length receiver.
*/
func (r Duration) IsZero() bool { return r.seconds == 0 && r.nanoseconds == 0 }

/*
IsPositive returns a Boolean value indicative of a strictly positive
receiver.
*/
func (r Duration) IsPositive() bool { return r.seconds > 0 || r.nanoseconds > 0 }

/*
IsNegative returns a Boolean value indicative of a strictly negative
receiver.
*/
func (r Duration) IsNegative() bool { return r.seconds < 0 || r.nanoseconds < 0 }

/*
CheckedAdd returns the sum of the receiver and x alongside an error
which is non-nil on int64-second overflow.
*/
func (r Duration) CheckedAdd(x Duration) (Duration, error) {
	secs, ok := checkedAdd(r.seconds, x.seconds)
	if !ok {
		return Duration{}, errorDurationOverflow
	}
	nanos := r.nanoseconds + x.nanoseconds

	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		secs, ok = checkedAdd(secs, 1)
		if !ok {
			return Duration{}, errorDurationOverflow
		}
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		secs, ok = checkedSub(secs, 1)
		if !ok {
			return Duration{}, errorDurationOverflow
		}
		nanos += nanosPerSecond
	}

	return Duration{secs, nanos}, nil
}

/*
CheckedSub returns the difference of the receiver and x alongside an
error which is non-nil on int64-second overflow.
*/
func (r Duration) CheckedSub(x Duration) (Duration, error) {
	secs, ok := checkedSub(r.seconds, x.seconds)
	if !ok {
		return Duration{}, errorDurationOverflow
	}
	nanos := r.nanoseconds - x.nanoseconds

	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		secs, ok = checkedAdd(secs, 1)
		if !ok {
			return Duration{}, errorDurationOverflow
		}
		nanos -= nanosPerSecond
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		secs, ok = checkedSub(secs, 1)
		if !ok {
			return Duration{}, errorDurationOverflow
		}
		nanos += nanosPerSecond
	}

	return Duration{secs, nanos}, nil
}

/*
CheckedMul returns the receiver scaled by the integer factor x
alongside an error which is non-nil on int64-second overflow.
*/
func (r Duration) CheckedMul(x int32) (Duration, error) {
	// total nanos of one scaled fractional second fits int64
	// comfortably: |nanoseconds| < 1e9 and |x| <= 2^31
	nanos := int64(r.nanoseconds) * int64(x)
	extra := nanos / nanosPerSecond
	nanos %= nanosPerSecond

	secs, ok := checkedMul64(r.seconds, int64(x))
	if !ok {
		return Duration{}, errorDurationOverflow
	}
	secs, ok = checkedAdd(secs, extra)
	if !ok {
		return Duration{}, errorDurationOverflow
	}

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}

	return Duration{secs, int32(nanos)}, nil
}

/*
CheckedDiv returns the receiver divided by the integer divisor x
alongside an error which is non-nil when x is zero or when the
quotient overflows, the latter arising solely from [MinDuration]
divided by -1.
*/
func (r Duration) CheckedDiv(x int32) (Duration, error) {
	if x == 0 {
		return Duration{}, errorDurationZeroDivisor
	}
	if r.seconds == minInt64 && x == -1 {
		return Duration{}, errorDurationOverflow
	}

	secs := r.seconds / int64(x)
	carry := r.seconds - secs*int64(x)
	extra := carry * nanosPerSecond / int64(x)
	nanos := int64(r.nanoseconds)/int64(x) + extra

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}

	return Duration{secs, int32(nanos)}, nil
}

/*
SaturatingAdd returns the sum of the receiver and x, clamping to
[MinDuration] or [MaxDuration] in place of overflow.
*/
func (r Duration) SaturatingAdd(x Duration) Duration {
	sum, err := r.CheckedAdd(x)
	if err != nil {
		if x.IsNegative() {
			return MinDuration
		}
		return MaxDuration
	}
	return sum
}

/*
SaturatingSub returns the difference of the receiver and x, clamping
to [MinDuration] or [MaxDuration] in place of overflow.
*/
func (r Duration) SaturatingSub(x Duration) Duration {
	diff, err := r.CheckedSub(x)
	if err != nil {
		if x.IsNegative() {
			return MaxDuration
		}
		return MinDuration
	}
	return diff
}

/*
SaturatingMul returns the receiver scaled by the integer factor x,
clamping to [MinDuration] or [MaxDuration] in place of overflow.
*/
func (r Duration) SaturatingMul(x int32) Duration {
	prod, err := r.CheckedMul(x)
	if err != nil {
		if r.IsNegative() != (x < 0) {
			return MinDuration
		}
		return MaxDuration
	}
	return prod
}

/*
Abs returns the non-negative magnitude of the receiver, saturating to
[MaxDuration] for [MinDuration], whose exact magnitude is not
representable.
*/
func (r Duration) Abs() Duration {
	if !r.IsNegative() {
		return r
	}
	return r.Negate()
}

/*
Negate returns the sign-flipped receiver, saturating to [MaxDuration]
for [MinDuration].
*/
func (r Duration) Negate() Duration {
	if r.seconds == minInt64 {
		return MaxDuration
	}
	return Duration{-r.seconds, -r.nanoseconds}
}

/*
Compare returns an integer comparing the receiver to x: -1 when
shorter (more negative), 0 when equal, +1 when longer.
*/
func (r Duration) Compare(x Duration) int {
	switch {
	case r.seconds < x.seconds:
		return -1
	case r.seconds > x.seconds:
		return 1
	case r.nanoseconds < x.nanoseconds:
		return -1
	case r.nanoseconds > x.nanoseconds:
		return 1
	}
	return 0
}

/*
Eq returns true if the receiver and x describe the same span.
*/
func (r Duration) Eq(x Duration) bool {
	return r.seconds == x.seconds && r.nanoseconds == x.nanoseconds
}

/*
Ne returns true if the receiver and x describe different spans.
*/
func (r Duration) Ne(x Duration) bool { return !r.Eq(x) }

/*
Lt returns true if the receiver is strictly shorter than x.
*/
func (r Duration) Lt(x Duration) bool { return r.Compare(x) < 0 }

/*
Le returns true if the receiver is no longer than x.
*/
func (r Duration) Le(x Duration) bool { return r.Compare(x) <= 0 }

/*
Gt returns true if the receiver is strictly longer than x.
*/
func (r Duration) Gt(x Duration) bool { return r.Compare(x) > 0 }

/*
Ge returns true if the receiver is no shorter than x.
*/
func (r Duration) Ge(x Duration) bool { return r.Compare(x) >= 0 }

/*
String returns an ISO 8601-style rendering of the receiver, e.g.
"PT1.234S", "P2DT3S" or "-PT0.000000001S". A whole-day component, if
any, precedes the T; the fractional second component renders at the
finest of millisecond, microsecond or nanosecond precision that
loses nothing.
*/
func (r Duration) String() string {
	b := newStrBuilder()

	// the components share a sign, so the magnitude is simply
	// |seconds| + |nanoseconds|; extract without negating, as the
	// second count may be the int64 minimum
	var usecs, unanos uint64
	if r.IsNegative() {
		b.WriteByte('-')
		usecs = uint64(-(r.seconds + 1)) + 1
		unanos = uint64(-int64(r.nanoseconds))
	} else {
		usecs = uint64(r.seconds)
		unanos = uint64(r.nanoseconds)
	}
	b.WriteByte('P')

	if days := usecs / secsPerDay; days > 0 {
		b.WriteString(fmtUint(days, 10))
		b.WriteByte('D')
		usecs %= secsPerDay
	}
	b.WriteByte('T')
	b.WriteString(fmtUint(usecs, 10))

	switch {
	case unanos == 0:
	case unanos%nanosPerMilli == 0:
		b.WriteByte('.')
		b.WriteString(zeroPadUint(unanos/nanosPerMilli, 3))
	case unanos%nanosPerMicro == 0:
		b.WriteByte('.')
		b.WriteString(zeroPadUint(unanos/nanosPerMicro, 6))
	default:
		b.WriteByte('.')
		b.WriteString(zeroPadUint(unanos, 9))
	}
	b.WriteByte('S')

	return b.String()
}
