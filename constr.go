package gregorian

/*
constr.go contains constraint and constraint group components which
serve to implement caller-supplied validity conditions for the types
defined throughout this package.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns a [Constraint] which requires the presented value
to fall within min and max, inclusive of both.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || max < val {
			err = constraintViolationf("value is not in the allowed range")
		}
		return
	}
}

/*
DateRangeConstraint returns a [Constraint] for [Date] values to ensure that
the presented value is neither earlier than min nor later than max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(val Date) (err error) {
		if val.Lt(min) || max.Lt(val) {
			err = constraintViolationf("date ", val,
				" is not in the allowed range [", min, ", ", max, "]")
		}
		return
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values to
ensure that the presented value is neither less than min nor greater than
max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) (err error) {
		if val.Lt(min) || max.Lt(val) {
			err = constraintViolationf("duration ", val,
				" is not in the allowed range [", min, ", ", max, "]")
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined check
function. That function should return nil if the property is satisfied, or
an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}
