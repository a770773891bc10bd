package gregorian

import (
	"fmt"
	"testing"
	"time"
)

func ExampleNewDuration() {
	d, err := NewDuration(1, 1_500_000_000)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d seconds, %d nanoseconds\n", d.WholeSeconds(), d.SubsecNanoseconds())
	// Output: 2 seconds, 500000000 nanoseconds
}

func ExampleDuration_String() {
	fmt.Println(DurationMilliseconds(1234))
	fmt.Println(DurationDays(2).SaturatingAdd(DurationSeconds(3)))
	fmt.Println(DurationNanoseconds(-1))
	// Output:
	// PT1.234S
	// P2DT3S
	// -PT0.000000001S
}

func TestNewDuration(t *testing.T) {
	tests := []struct {
		name          string
		secs          int64
		nanos         int32
		wantSecs      int64
		wantNanos     int32
		expectFailure bool
	}{
		{name: "already normal", secs: 5, nanos: 300, wantSecs: 5, wantNanos: 300},
		{name: "nanos carry up", secs: 1, nanos: 1_500_000_000, wantSecs: 2, wantNanos: 500_000_000},
		{name: "nanos carry down", secs: -1, nanos: -1_500_000_000, wantSecs: -2, wantNanos: -500_000_000},
		{name: "mixed signs toward positive", secs: 2, nanos: -500_000_000, wantSecs: 1, wantNanos: 500_000_000},
		{name: "mixed signs toward negative", secs: -2, nanos: 500_000_000, wantSecs: -1, wantNanos: -500_000_000},
		{name: "zero", secs: 0, nanos: 0},
		{name: "zero seconds negative nanos", secs: 0, nanos: -1, wantNanos: -1},
		{name: "carry overflows seconds", secs: maxInt64, nanos: 1_000_000_000, expectFailure: true},
		{name: "carry underflows seconds", secs: minInt64, nanos: -1_000_000_000, expectFailure: true},
	}

	for _, tc := range tests {
		d, err := NewDuration(tc.secs, tc.nanos)
		if tc.expectFailure {
			if err != errorDurationOverflow {
				t.Fatalf("%s failed [%s]:\n\twant: %v\n\tgot:  %v",
					t.Name(), tc.name, errorDurationOverflow, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), tc.name, err)
		}
		if d.WholeSeconds() != tc.wantSecs || d.SubsecNanoseconds() != tc.wantNanos {
			t.Fatalf("%s failed [%s]:\n\twant: (%d, %d)\n\tgot:  (%d, %d)",
				t.Name(), tc.name, tc.wantSecs, tc.wantNanos,
				d.WholeSeconds(), d.SubsecNanoseconds())
		}
	}
}

func TestDuration_factories(t *testing.T) {
	tests := []struct {
		name string
		a, b Duration
	}{
		{name: "milli equals micro", a: DurationMilliseconds(1), b: DurationMicroseconds(1000)},
		{name: "micro equals nano", a: DurationMicroseconds(1), b: DurationNanoseconds(1000)},
		{name: "week equals days", a: DurationWeeks(1), b: DurationDays(7)},
		{name: "day equals hours", a: DurationDays(1), b: DurationHours(24)},
		{name: "hour equals minutes", a: DurationHours(1), b: DurationMinutes(60)},
		{name: "minute equals seconds", a: DurationMinutes(1), b: DurationSeconds(60)},
		{name: "second equals millis", a: DurationSeconds(1), b: DurationMilliseconds(1000)},
		{name: "negative milli equals micro", a: DurationMilliseconds(-1), b: DurationMicroseconds(-1000)},
		{name: "split nano total", a: DurationNanoseconds(2_700_000_000), b: MustNewDuration(2, 700_000_000)},
		{name: "negative split nano total", a: DurationNanoseconds(-2_700_000_000), b: MustNewDuration(-2, -700_000_000)},
	}

	for _, tc := range tests {
		if !tc.a.Eq(tc.b) {
			t.Fatalf("%s failed [%s]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.b, tc.a)
		}
	}

	for _, fn := range []func(){
		func() { _ = DurationWeeks(maxInt64 / 2) },
		func() { _ = DurationDays(minInt64 / 2) },
		func() { _ = DurationHours(maxInt64 / 2) },
		func() { _ = DurationMinutes(maxInt64 / 2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s failed: expected panic, got none", t.Name())
				}
			}()
			fn()
		}()
	}
}

func TestDuration_accessors(t *testing.T) {
	d := MustNewDuration(2*secsPerWeek+3*secsPerDay+4*secsPerHour+5*secsPerMinute+6, 123_456_789)

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{name: "weeks", got: d.WholeWeeks(), want: 2},
		{name: "days", got: d.WholeDays(), want: 17},
		{name: "hours", got: d.WholeHours(), want: 17*24 + 4},
		{name: "minutes", got: d.WholeMinutes(), want: ((17*24+4)*60 + 5)},
		{name: "seconds", got: d.WholeSeconds(), want: ((17*24+4)*60+5)*60 + 6},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s failed [%s]:\n\twant: %d\n\tgot:  %d",
				t.Name(), tc.name, tc.want, tc.got)
		}
	}

	if d.SubsecMilliseconds() != 123 ||
		d.SubsecMicroseconds() != 123_456 ||
		d.SubsecNanoseconds() != 123_456_789 {
		t.Fatalf("%s failed [subsec cmp.]: got (%d, %d, %d)", t.Name(),
			d.SubsecMilliseconds(), d.SubsecMicroseconds(), d.SubsecNanoseconds())
	}

	neg := d.Negate()
	if neg.WholeDays() != -17 || neg.SubsecMilliseconds() != -123 {
		t.Fatalf("%s failed [negative subsec cmp.]: got (%d, %d)",
			t.Name(), neg.WholeDays(), neg.SubsecMilliseconds())
	}

	ms, err := DurationSeconds(2).WholeMilliseconds()
	if err != nil || ms != 2000 {
		t.Fatalf("%s failed [whole ms]: got (%d, %v)", t.Name(), ms, err)
	}
	us, err := DurationMilliseconds(3).WholeMicroseconds()
	if err != nil || us != 3000 {
		t.Fatalf("%s failed [whole us]: got (%d, %v)", t.Name(), us, err)
	}
	ns, err := MustNewDuration(1, 2).WholeNanoseconds()
	if err != nil || ns != 1_000_000_002 {
		t.Fatalf("%s failed [whole ns]: got (%d, %v)", t.Name(), ns, err)
	}

	if _, err = MaxDuration.WholeNanoseconds(); err != errorDurationUnitOverflow {
		t.Fatalf("%s failed [ns overflow]:\n\twant: %v\n\tgot:  %v",
			t.Name(), errorDurationUnitOverflow, err)
	}
	if _, err = MinDuration.WholeMilliseconds(); err != errorDurationUnitOverflow {
		t.Fatalf("%s failed [ms overflow]:\n\twant: %v\n\tgot:  %v",
			t.Name(), errorDurationUnitOverflow, err)
	}
}

func TestDuration_signPredicates(t *testing.T) {
	tests := []struct {
		name             string
		d                Duration
		zero, pos, neg   bool
	}{
		{name: "zero", d: ZeroDuration, zero: true},
		{name: "positive seconds", d: DurationSeconds(1), pos: true},
		{name: "negative seconds", d: DurationSeconds(-1), neg: true},
		{name: "positive nanos only", d: DurationNanoseconds(1), pos: true},
		{name: "negative nanos only", d: DurationNanoseconds(-1), neg: true},
		{name: "minimum", d: MinDuration, neg: true},
		{name: "maximum", d: MaxDuration, pos: true},
	}

	for _, tc := range tests {
		if tc.d.IsZero() != tc.zero || tc.d.IsPositive() != tc.pos || tc.d.IsNegative() != tc.neg {
			t.Fatalf("%s failed [%s]: got (%t, %t, %t)", t.Name(), tc.name,
				tc.d.IsZero(), tc.d.IsPositive(), tc.d.IsNegative())
		}
	}
}

func TestDuration_CheckedAdd(t *testing.T) {
	tests := []struct {
		name          string
		a, b, want    Duration
		expectFailure bool
	}{
		{name: "plain", a: DurationSeconds(1), b: DurationSeconds(2),
			want: DurationSeconds(3)},
		{name: "nanos carry", a: MustNewDuration(1, 600_000_000),
			b: MustNewDuration(1, 600_000_000), want: MustNewDuration(3, 200_000_000)},
		{name: "opposite signs renormalize", a: DurationSeconds(-3),
			b: MustNewDuration(1, 500_000_000), want: MustNewDuration(-1, -500_000_000)},
		{name: "cancel to zero", a: DurationSeconds(5), b: DurationSeconds(-5),
			want: ZeroDuration},
		{name: "second overflow", a: MaxDuration, b: DurationSeconds(1),
			expectFailure: true},
		{name: "nano carry overflow", a: MaxDuration, b: DurationNanoseconds(1),
			expectFailure: true},
		{name: "second underflow", a: MinDuration, b: DurationSeconds(-1),
			expectFailure: true},
	}

	for _, tc := range tests {
		got, err := tc.a.CheckedAdd(tc.b)
		if tc.expectFailure {
			if err != errorDurationOverflow {
				t.Fatalf("%s failed [%s]:\n\twant: %v\n\tgot:  %v",
					t.Name(), tc.name, errorDurationOverflow, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), tc.name, err)
		}
		if !got.Eq(tc.want) {
			t.Fatalf("%s failed [%s cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, got)
		}

		// subtraction inverts exactly within range
		back, err := got.CheckedSub(tc.b)
		if err != nil {
			t.Fatalf("%s failed [%s inverse]: %v", t.Name(), tc.name, err)
		}
		if !back.Eq(tc.a) {
			t.Fatalf("%s failed [%s inverse cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.a, back)
		}
	}

	if _, err := MinDuration.CheckedSub(DurationNanoseconds(1)); err != errorDurationOverflow {
		t.Fatalf("%s failed [sub nano underflow]:\n\twant: %v\n\tgot:  %v",
			t.Name(), errorDurationOverflow, err)
	}
}

func TestDuration_CheckedMul(t *testing.T) {
	tests := []struct {
		name          string
		d             Duration
		x             int32
		want          Duration
		expectFailure bool
	}{
		{name: "plain", d: DurationSeconds(3), x: 4, want: DurationSeconds(12)},
		{name: "nanos spill into seconds", d: DurationMilliseconds(400), x: 3,
			want: MustNewDuration(1, 200_000_000)},
		{name: "negative factor", d: MustNewDuration(1, 500_000_000), x: -2,
			want: DurationSeconds(-3)},
		{name: "zero factor", d: MaxDuration, x: 0, want: ZeroDuration},
		{name: "overflow", d: DurationSeconds(maxInt64 / 2), x: 3, expectFailure: true},
		{name: "underflow", d: DurationSeconds(minInt64 / 2), x: 3, expectFailure: true},
	}

	for _, tc := range tests {
		got, err := tc.d.CheckedMul(tc.x)
		if tc.expectFailure {
			if err != errorDurationOverflow {
				t.Fatalf("%s failed [%s]:\n\twant: %v\n\tgot:  %v",
					t.Name(), tc.name, errorDurationOverflow, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), tc.name, err)
		}
		if !got.Eq(tc.want) {
			t.Fatalf("%s failed [%s cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, got)
		}
	}
}

func TestDuration_CheckedDiv(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		x    int32
		want Duration
		err  error
	}{
		{name: "plain", d: DurationSeconds(12), x: 4, want: DurationSeconds(3)},
		{name: "second remainder feeds nanos", d: DurationSeconds(3), x: 2,
			want: MustNewDuration(1, 500_000_000)},
		{name: "negative dividend", d: DurationSeconds(-3), x: 2,
			want: MustNewDuration(-1, -500_000_000)},
		{name: "negative divisor", d: DurationSeconds(3), x: -2,
			want: MustNewDuration(-1, -500_000_000)},
		{name: "nanos divide", d: DurationNanoseconds(9), x: 3,
			want: DurationNanoseconds(3)},
		{name: "truncation toward zero", d: DurationNanoseconds(1), x: 2,
			want: ZeroDuration},
		{name: "zero divisor", d: DurationSeconds(1), x: 0,
			err: errorDurationZeroDivisor},
		{name: "minimum by minus one", d: MinDuration, x: -1,
			err: errorDurationOverflow},
	}

	for _, tc := range tests {
		got, err := tc.d.CheckedDiv(tc.x)
		if tc.err != nil {
			if err != tc.err {
				t.Fatalf("%s failed [%s]:\n\twant: %v\n\tgot:  %v",
					t.Name(), tc.name, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), tc.name, err)
		}
		if !got.Eq(tc.want) {
			t.Fatalf("%s failed [%s cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, got)
		}
	}
}

func TestDuration_saturating(t *testing.T) {
	tests := []struct {
		name string
		got  Duration
		want Duration
	}{
		{name: "add clamps high", got: MaxDuration.SaturatingAdd(DurationSeconds(1)),
			want: MaxDuration},
		{name: "add clamps low", got: MinDuration.SaturatingAdd(DurationSeconds(-1)),
			want: MinDuration},
		{name: "add within range", got: DurationSeconds(1).SaturatingAdd(DurationSeconds(2)),
			want: DurationSeconds(3)},
		{name: "sub clamps low", got: MinDuration.SaturatingSub(DurationSeconds(1)),
			want: MinDuration},
		{name: "sub clamps high", got: MaxDuration.SaturatingSub(DurationSeconds(-1)),
			want: MaxDuration},
		{name: "mul clamps high", got: MaxDuration.SaturatingMul(2),
			want: MaxDuration},
		{name: "mul clamps low", got: MaxDuration.SaturatingMul(-2),
			want: MinDuration},
		{name: "negative mul clamps high", got: MinDuration.SaturatingMul(-2),
			want: MaxDuration},
		{name: "mul within range", got: DurationSeconds(3).SaturatingMul(4),
			want: DurationSeconds(12)},
	}

	for _, tc := range tests {
		if !tc.got.Eq(tc.want) {
			t.Fatalf("%s failed [%s]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, tc.got)
		}
	}
}

func TestDuration_AbsNegate(t *testing.T) {
	tests := []struct {
		name string
		got  Duration
		want Duration
	}{
		{name: "abs of negative", got: MustNewDuration(-1, -500_000_000).Abs(),
			want: MustNewDuration(1, 500_000_000)},
		{name: "abs of positive", got: DurationSeconds(5).Abs(),
			want: DurationSeconds(5)},
		{name: "abs of zero", got: ZeroDuration.Abs(), want: ZeroDuration},
		{name: "abs of minimum saturates", got: MinDuration.Abs(), want: MaxDuration},
		{name: "negate positive", got: DurationSeconds(5).Negate(),
			want: DurationSeconds(-5)},
		{name: "negate negative", got: DurationSeconds(-5).Negate(),
			want: DurationSeconds(5)},
		{name: "negate minimum saturates", got: MinDuration.Negate(), want: MaxDuration},
	}

	for _, tc := range tests {
		if !tc.got.Eq(tc.want) {
			t.Fatalf("%s failed [%s]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, tc.got)
		}
	}
}

func TestDuration_comparisons(t *testing.T) {
	ordered := []Duration{
		MinDuration,
		DurationSeconds(-5),
		DurationNanoseconds(-1),
		ZeroDuration,
		DurationNanoseconds(1),
		MustNewDuration(1, 500_000_000),
		DurationSeconds(2),
		MaxDuration,
	}

	for i := 1; i < len(ordered); i++ {
		a, b := ordered[i-1], ordered[i]
		if !a.Lt(b) || !a.Le(b) || !b.Gt(a) || !b.Ge(a) ||
			a.Compare(b) != -1 || b.Compare(a) != 1 {
			t.Fatalf("%s failed [ordering at %d]: %s vs %s", t.Name(), i, a, b)
		}
	}

	a := DurationSeconds(7)
	if !a.Eq(a) || a.Ne(a) || a.Compare(a) != 0 || !a.Le(a) || !a.Ge(a) {
		t.Fatalf("%s failed [reflexive]", t.Name())
	}
}

func TestDuration_stdInterop(t *testing.T) {
	tests := []struct {
		name string
		std  time.Duration
	}{
		{name: "positive", std: 90*time.Minute + 30*time.Second},
		{name: "negative", std: -(2*time.Hour + 15*time.Nanosecond)},
		{name: "zero", std: 0},
		{name: "sub-second", std: 123456 * time.Microsecond},
	}

	for _, tc := range tests {
		d := NewDurationFromStd(tc.std)
		back, err := d.Std()
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), tc.name, err)
		}
		if back != tc.std {
			t.Fatalf("%s failed [%s cmp.]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.std, back)
		}
	}

	if _, err := MaxDuration.Std(); err != errorDurationStdRange {
		t.Fatalf("%s failed [beyond std range]:\n\twant: %v\n\tgot:  %v",
			t.Name(), errorDurationStdRange, err)
	}
	if _, err := DurationDays(365_000_000).Std(); err != errorDurationStdRange {
		t.Fatalf("%s failed [large span]:\n\twant: %v\n\tgot:  %v",
			t.Name(), errorDurationStdRange, err)
	}
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want string
	}{
		{name: "zero", d: ZeroDuration, want: "PT0S"},
		{name: "whole seconds", d: DurationSeconds(42), want: "PT42S"},
		{name: "milli precision", d: DurationMilliseconds(1234), want: "PT1.234S"},
		{name: "micro precision", d: DurationMicroseconds(1_000_001), want: "PT1.000001S"},
		{name: "nano precision", d: DurationNanoseconds(1_000_000_001), want: "PT1.000000001S"},
		{name: "days split out", d: DurationDays(2).SaturatingAdd(DurationSeconds(3)), want: "P2DT3S"},
		{name: "negative", d: DurationSeconds(-42), want: "-PT42S"},
		{name: "negative fraction", d: DurationNanoseconds(-1), want: "-PT0.000000001S"},
		{name: "negative with days", d: DurationDays(-1).SaturatingAdd(DurationMilliseconds(-500)), want: "-P1DT0.500S"},
	}

	for _, tc := range tests {
		if got := tc.d.String(); got != tc.want {
			t.Fatalf("%s failed [%s]:\n\twant: %s\n\tgot:  %s",
				t.Name(), tc.name, tc.want, got)
		}
	}
}

func TestDuration_constraintSurface(t *testing.T) {
	window := DurationRangeConstraint(ZeroDuration, DurationHours(24))

	if _, err := NewDuration(3600, 0, window); err != nil {
		t.Fatalf("%s failed [in-window]: %v", t.Name(), err)
	}
	if _, err := NewDuration(-1, 0, window); err == nil {
		t.Fatalf("%s failed [beneath window]: expected error, got nil", t.Name())
	}
	if _, err := NewDuration(secsPerDay+1, 0, window); err == nil {
		t.Fatalf("%s failed [beyond window]: expected error, got nil", t.Name())
	}
}

func TestDuration_codecov(t *testing.T) {
	_ = MustNewDuration(1, 0)
	_ = MinDuration.String()
	_ = MaxDuration.String()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s failed: expected panic, got none", t.Name())
			}
		}()
		_ = MustNewDuration(maxInt64, 1_000_000_000)
	}()
}
