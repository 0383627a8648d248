package table

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"statplot/utils"
)

func testTable(t *testing.T) *Table {
	tbl, err := New(
		NewStringColumn("day", []string{"Thur", "Fri", "Thur", "Sat"}),
		NewFloatColumn("tip", []float64{3.0, 2.5, 4.0, 1.5}),
	)
	assert.NoError(t, err)
	return tbl
}

func TestNew_Mismatched(t *testing.T) {
	_, err := New(
		NewStringColumn("day", []string{"Thur", "Fri"}),
		NewFloatColumn("tip", []float64{3.0}),
	)
	assert.Error(t, err)

	_, err = New(
		NewFloatColumn("tip", []float64{3.0}),
		NewFloatColumn("tip", []float64{4.0}),
	)
	assert.Error(t, err)
}

func TestAccessors(t *testing.T) {
	tbl := testTable(t)
	utils.AssertEqual(t, tbl.NumRows(), 4)
	utils.AssertEqual(t, tbl.NumCols(), 2)
	utils.AssertTrue(t, tbl.Has("day"))
	utils.AssertTrue(t, !tbl.Has("bill"))

	days, err := tbl.Strings("day")
	assert.NoError(t, err)
	utils.AssertEqual(t, days[3], "Sat")

	_, err = tbl.Strings("tip")
	assert.Error(t, err)
	_, err = tbl.Floats("day")
	assert.Error(t, err)
	_, err = tbl.Floats("bill")
	assert.Error(t, err)
}

func TestWithColumn(t *testing.T) {
	tbl := testTable(t)
	bigger, err := tbl.WithColumn(NewFloatColumn("size", []float64{2, 2, 3, 4}))
	assert.NoError(t, err)
	utils.AssertEqual(t, bigger.NumCols(), 3)
	utils.AssertEqual(t, tbl.NumCols(), 2)
	utils.AssertTrue(t, bigger.ID() != tbl.ID())

	replaced, err := bigger.WithColumn(NewStringColumn("size", []string{"a", "a", "b", "c"}))
	assert.NoError(t, err)
	utils.AssertEqual(t, replaced.NumCols(), 3)
	kind, err := replaced.Kind("size")
	assert.NoError(t, err)
	utils.AssertEqual(t, kind, String)
}

func TestSplit(t *testing.T) {
	tbl := testTable(t)
	groups, err := tbl.Split("day")
	assert.NoError(t, err)
	assert.Equal(t, len(groups), 3)

	// First-appearance order.
	assert.Equal(t, groups[0].Value, "Thur")
	assert.Equal(t, groups[1].Value, "Fri")
	assert.Equal(t, groups[2].Value, "Sat")

	tips, err := groups[0].Table.Floats("tip")
	assert.NoError(t, err)
	assert.Equal(t, tips, []float64{3.0, 4.0})

	_, err = tbl.Split("tip")
	assert.Error(t, err)
}

func TestFormatFloats(t *testing.T) {
	assert.Equal(t,
		FormatFloats([]float64{4, 6.5, 8}),
		[]string{"4", "6.5", "8"})
}

func TestReadCSV(t *testing.T) {
	data := "day,tip,size\nThur,3.00,2\nFri,2.50,2\nSat,1.50,4\n"
	schema := Schema{
		{Name: "day", Kind: String},
		{Name: "tip", Kind: Float},
	}
	tbl, err := ReadCSV(strings.NewReader(data), schema)
	assert.NoError(t, err)
	utils.AssertEqual(t, tbl.NumRows(), 3)
	utils.AssertEqual(t, tbl.NumCols(), 2)

	tips, err := tbl.Floats("tip")
	assert.NoError(t, err)
	assert.Equal(t, tips, []float64{3.0, 2.5, 1.5})
}

func TestReadCSV_BadFloat(t *testing.T) {
	data := "day,tip\nThur,3.00\nFri,n/a\n"
	_, err := ReadCSV(strings.NewReader(data), Schema{{Name: "tip", Kind: Float}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadCSV_DuplicateHeader(t *testing.T) {
	data := "day,tip,day\nThur,3.00,Fri\n"
	_, err := ReadCSV(strings.NewReader(data), Schema{{Name: "day", Kind: String}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate header")
}

func TestReadCSV_MissingColumn(t *testing.T) {
	data := "day,tip\nThur,3.00\n"
	_, err := ReadCSV(strings.NewReader(data), Schema{{Name: "bill", Kind: Float}})
	assert.Error(t, err)
}

func TestDataFrameRoundTrip(t *testing.T) {
	df := dataframe.LoadRecords(
		[][]string{
			{"class", "hwy"},
			{"compact", "29"},
			{"suv", "17"},
			{"compact", "31"},
		},
	)
	tbl, err := FromDataFrame(df)
	assert.NoError(t, err)

	kind, err := tbl.Kind("hwy")
	assert.NoError(t, err)
	utils.AssertEqual(t, kind, Float)

	hwy, err := tbl.Floats("hwy")
	assert.NoError(t, err)
	assert.Equal(t, hwy, []float64{29, 17, 31})

	back, err := ToDataFrame(tbl)
	assert.NoError(t, err)
	assert.Equal(t, back.Nrow(), 3)
	assert.Equal(t, back.Names(), []string{"class", "hwy"})
}
