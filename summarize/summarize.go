package summarize

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"statplot/stats"
	"statplot/table"
)

// GroupSummary is the reduction of one partition: the group-key
// values in group-field order, and the descriptive statistics of
// the measurement within the partition. SD and SE are NaN when the
// partition has a single member; Count and Mean are always defined.
type GroupSummary struct {
	Keys  []string
	Count int64
	Mean  float64
	SD    float64
	SE    float64
}

// SummaryTable holds one GroupSummary per distinct key tuple, in
// first-appearance order.
type SummaryTable struct {
	GroupFields      []string
	MeasurementField string
	Groups           []GroupSummary
}

// compositeKey encodes a key tuple so that distinct tuples map to
// distinct strings regardless of their contents. Each part is
// length-prefixed, so no separator value can collide.
func compositeKey(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strconv.Itoa(len(part)))
		b.WriteByte(':')
		b.WriteString(part)
	}
	return b.String()
}

// Summarize partitions the table by exact equality of the group-key
// tuple and reduces the measurement within each partition to count,
// mean, sample standard deviation and standard error. It is a pure
// function of its inputs: no state is retained and the table is only
// read. An empty table yields an empty SummaryTable.
func Summarize(t *table.Table, groupFields []string, measurement string) (*SummaryTable, error) {
	if len(groupFields) == 0 {
		return nil, errors.New("summarize: at least one group field required")
	}

	keyCols := make([][]string, len(groupFields))
	for i, field := range groupFields {
		if !t.Has(field) {
			return nil, &InvalidFieldError{Field: field, Reason: "not in table schema"}
		}
		keys, err := t.Strings(field)
		if err != nil {
			return nil, &InvalidFieldError{Field: field, Reason: "is not a string column"}
		}
		keyCols[i] = keys
	}

	if !t.Has(measurement) {
		return nil, &InvalidFieldError{Field: measurement, Reason: "not in table schema"}
	}
	values, err := t.Floats(measurement)
	if err != nil {
		return nil, &NonNumericMeasurementError{Field: measurement, Row: -1}
	}

	order := make([]string, 0)
	accs := make(map[string]*stats.Welford)
	keysByComposite := make(map[string][]string)

	for row := 0; row < t.NumRows(); row++ {
		if math.IsNaN(values[row]) {
			return nil, &NonNumericMeasurementError{Field: measurement, Row: row}
		}
		parts := make([]string, len(keyCols))
		for i, keys := range keyCols {
			parts[i] = keys[row]
		}
		composite := compositeKey(parts)
		acc, ok := accs[composite]
		if !ok {
			acc = stats.NewWelford()
			accs[composite] = acc
			keysByComposite[composite] = parts
			order = append(order, composite)
		}
		acc.Update(values[row])
	}

	summary := &SummaryTable{
		GroupFields:      groupFields,
		MeasurementField: measurement,
		Groups:           make([]GroupSummary, 0, len(order)),
	}
	for _, composite := range order {
		acc := accs[composite]
		summary.Groups = append(summary.Groups, GroupSummary{
			Keys:  keysByComposite[composite],
			Count: int64(acc.Count()),
			Mean:  acc.GetMean(),
			SD:    acc.GetSD(),
			SE:    acc.GetSE(),
		})
	}
	return summary, nil
}

// Lookup finds the summary for an exact key tuple.
func (st *SummaryTable) Lookup(keys ...string) (GroupSummary, bool) {
	want := compositeKey(keys)
	for _, group := range st.Groups {
		if compositeKey(group.Keys) == want {
			return group, true
		}
	}
	return GroupSummary{}, false
}

func (st *SummaryTable) TotalCount() int64 {
	total := int64(0)
	for _, group := range st.Groups {
		total += group.Count
	}
	return total
}

// ToTable lays the summary out as a table: one string column per
// group field, then count, mean, sd and se float columns. This is
// the shape bar-with-error-bars figures consume.
func (st *SummaryTable) ToTable() (*table.Table, error) {
	columns := make([]table.Column, 0, len(st.GroupFields)+4)
	for i, field := range st.GroupFields {
		keys := make([]string, len(st.Groups))
		for j, group := range st.Groups {
			keys[j] = group.Keys[i]
		}
		columns = append(columns, table.NewStringColumn(field, keys))
	}

	counts := make([]float64, len(st.Groups))
	means := make([]float64, len(st.Groups))
	sds := make([]float64, len(st.Groups))
	ses := make([]float64, len(st.Groups))
	for j, group := range st.Groups {
		counts[j] = float64(group.Count)
		means[j] = group.Mean
		sds[j] = group.SD
		ses[j] = group.SE
	}
	columns = append(columns,
		table.NewFloatColumn("count", counts),
		table.NewFloatColumn("mean", means),
		table.NewFloatColumn("sd", sds),
		table.NewFloatColumn("se", ses),
	)
	return table.New(columns...)
}
