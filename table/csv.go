package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type Field struct {
	Name string
	Kind Kind
}

// Schema declares, ahead of the load, which columns to read and how
// to type them. Columns in the file but not in the schema are ignored.
type Schema []Field

// ReadCSV loads comma-separated data whose first row names the
// fields. Float cells that do not parse abort the load; nothing is
// coerced silently.
func ReadCSV(r io.Reader, schema Schema) (*Table, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("table: empty schema")
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("table: reading header: %w", err)
	}

	position := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := position[name]; dup {
			return nil, fmt.Errorf("table: duplicate header column %q", name)
		}
		position[name] = i
	}

	type parsedColumn struct {
		field  Field
		pos    int
		strs   []string
		floats []float64
	}
	parsed := make([]parsedColumn, len(schema))
	for i, field := range schema {
		pos, ok := position[field.Name]
		if !ok {
			return nil, fmt.Errorf("table: column %q not in header", field.Name)
		}
		parsed[i] = parsedColumn{field: field, pos: pos}
	}

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: row %d: %w", row+1, err)
		}
		row++
		for i := range parsed {
			col := &parsed[i]
			cell := strings.TrimSpace(record[col.pos])
			if col.field.Kind == String {
				col.strs = append(col.strs, cell)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("table: row %d: column %q: parsing %q as float",
					row, col.field.Name, cell)
			}
			col.floats = append(col.floats, v)
		}
	}

	columns := make([]Column, len(parsed))
	for i, col := range parsed {
		if col.field.Kind == String {
			columns[i] = NewStringColumn(col.field.Name, col.strs)
		} else {
			columns[i] = NewFloatColumn(col.field.Name, col.floats)
		}
	}
	return New(columns...)
}

func ReadCSVFile(path string, schema Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, schema)
}
