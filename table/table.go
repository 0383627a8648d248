package table

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

var gTableIdCounter int64 = 0

type Kind int

const (
	String Kind = iota
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Column is one named, typed slice of values. Exactly one of the
// backing slices is populated, matching the kind.
type Column struct {
	name   string
	kind   Kind
	strs   []string
	floats []float64
}

func NewStringColumn(name string, values []string) Column {
	return Column{name: name, kind: String, strs: values}
}

func NewFloatColumn(name string, values []float64) Column {
	return Column{name: name, kind: Float, floats: values}
}

func (c Column) Name() string {
	return c.name
}

func (c Column) Kind() Kind {
	return c.kind
}

func (c Column) length() int {
	if c.kind == String {
		return len(c.strs)
	}
	return len(c.floats)
}

// Table is an ordered set of equal-length columns with unique names.
// It is immutable after construction: derived tables are new values,
// and accessors return backing slices that callers must not modify.
// Every table carries a process-unique id used as a cache key.
type Table struct {
	id      int64
	columns []Column
	byName  map[string]int
	numRows int
}

func New(columns ...Column) (*Table, error) {
	byName := make(map[string]int)
	numRows := 0
	for i, column := range columns {
		if column.name == "" {
			return nil, fmt.Errorf("table: column %d has no name", i)
		}
		if _, ok := byName[column.name]; ok {
			return nil, fmt.Errorf("table: duplicate column %q", column.name)
		}
		byName[column.name] = i
		if i == 0 {
			numRows = column.length()
		} else if column.length() != numRows {
			return nil, fmt.Errorf("table: column %q has %d rows, want %d",
				column.name, column.length(), numRows)
		}
	}
	return &Table{
		id:      atomic.AddInt64(&gTableIdCounter, 1),
		columns: columns,
		byName:  byName,
		numRows: numRows,
	}, nil
}

func (t *Table) ID() int64 {
	return t.id
}

func (t *Table) NumRows() int {
	return t.numRows
}

func (t *Table) NumCols() int {
	return len(t.columns)
}

func (t *Table) Fields() []string {
	fields := make([]string, len(t.columns))
	for i, column := range t.columns {
		fields[i] = column.name
	}
	return fields
}

func (t *Table) Has(field string) bool {
	_, ok := t.byName[field]
	return ok
}

func (t *Table) Kind(field string) (Kind, error) {
	i, ok := t.byName[field]
	if !ok {
		return 0, fmt.Errorf("table: no column %q", field)
	}
	return t.columns[i].kind, nil
}

func (t *Table) Strings(field string) ([]string, error) {
	i, ok := t.byName[field]
	if !ok {
		return nil, fmt.Errorf("table: no column %q", field)
	}
	if t.columns[i].kind != String {
		return nil, fmt.Errorf("table: column %q is %v, want string",
			field, t.columns[i].kind)
	}
	return t.columns[i].strs, nil
}

func (t *Table) Floats(field string) ([]float64, error) {
	i, ok := t.byName[field]
	if !ok {
		return nil, fmt.Errorf("table: no column %q", field)
	}
	if t.columns[i].kind != Float {
		return nil, fmt.Errorf("table: column %q is %v, want float",
			field, t.columns[i].kind)
	}
	return t.columns[i].floats, nil
}

// WithColumn returns a new table with the column appended, or with
// the same-named column replaced.
func (t *Table) WithColumn(column Column) (*Table, error) {
	columns := make([]Column, len(t.columns), len(t.columns)+1)
	copy(columns, t.columns)
	if i, ok := t.byName[column.name]; ok {
		columns[i] = column
	} else {
		columns = append(columns, column)
	}
	return New(columns...)
}

type SplitGroup struct {
	Value string
	Table *Table
}

// Split partitions rows by the values of a string column, in order of
// first appearance.
func (t *Table) Split(field string) ([]SplitGroup, error) {
	keys, err := t.Strings(field)
	if err != nil {
		return nil, err
	}
	order := make([]string, 0)
	rowsByKey := make(map[string][]int)
	for row, key := range keys {
		if _, ok := rowsByKey[key]; !ok {
			order = append(order, key)
		}
		rowsByKey[key] = append(rowsByKey[key], row)
	}

	groups := make([]SplitGroup, 0, len(order))
	for _, key := range order {
		sub, err := t.selectRows(rowsByKey[key])
		if err != nil {
			return nil, err
		}
		groups = append(groups, SplitGroup{Value: key, Table: sub})
	}
	return groups, nil
}

func (t *Table) selectRows(rows []int) (*Table, error) {
	columns := make([]Column, len(t.columns))
	for i, column := range t.columns {
		if column.kind == String {
			strs := make([]string, len(rows))
			for j, row := range rows {
				strs[j] = column.strs[row]
			}
			columns[i] = NewStringColumn(column.name, strs)
		} else {
			floats := make([]float64, len(rows))
			for j, row := range rows {
				floats[j] = column.floats[row]
			}
			columns[i] = NewFloatColumn(column.name, floats)
		}
	}
	return New(columns...)
}

// FormatFloats renders numeric values as strings, for grouping or
// faceting on a numeric column. The conversion is explicit: tables
// never coerce between kinds on their own.
func FormatFloats(values []float64) []string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strs
}
