package summarize

import "fmt"

// InvalidFieldError reports a group-key or measurement field that is
// not usable: absent from the table schema, or a group key that is
// not a string column.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("summarize: field %q %s", e.Field, e.Reason)
}

// NonNumericMeasurementError reports a measurement that cannot be
// reduced: the column is not numeric, or a value in it is NaN.
type NonNumericMeasurementError struct {
	Field string
	Row   int // -1 when the whole column is the problem
}

func (e *NonNumericMeasurementError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("summarize: measurement %q is not a numeric column", e.Field)
	}
	return fmt.Sprintf("summarize: measurement %q has a non-numeric value at row %d",
		e.Field, e.Row)
}
