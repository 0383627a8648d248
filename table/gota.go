package table

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FromDataFrame converts a gota dataframe into a Table. String and
// Bool series map to String columns, Int and Float series to Float
// columns. The kind mapping is explicit so nothing round-trips
// through text unnoticed.
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Error() != nil {
		return nil, df.Error()
	}

	names := df.Names()
	types := df.Types()
	columns := make([]Column, len(names))
	for i, name := range names {
		col := df.Col(name)
		switch types[i] {
		case series.String, series.Bool:
			records := make([]string, col.Len())
			copy(records, col.Records())
			columns[i] = NewStringColumn(name, records)
		case series.Int, series.Float:
			columns[i] = NewFloatColumn(name, col.Float())
		default:
			return nil, fmt.Errorf("table: series %q has unsupported type %v",
				name, types[i])
		}
	}
	return New(columns...)
}

func ToDataFrame(t *Table) (dataframe.DataFrame, error) {
	ss := make([]series.Series, t.NumCols())
	for i, field := range t.Fields() {
		kind, _ := t.Kind(field)
		if kind == String {
			strs, err := t.Strings(field)
			if err != nil {
				return dataframe.DataFrame{}, err
			}
			ss[i] = series.New(strs, series.String, field)
		} else {
			floats, err := t.Floats(field)
			if err != nil {
				return dataframe.DataFrame{}, err
			}
			ss[i] = series.New(floats, series.Float, field)
		}
	}
	df := dataframe.New(ss...)
	return df, df.Error()
}
