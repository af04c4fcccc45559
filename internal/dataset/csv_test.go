package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	content := "id,delivery_person_age,delivery_person_rating,city\n" +
		"1,34,4.5,Metropolitan\n" +
		"2,NaN ,4.2,Urban\n" +
		"3,29,,Semi-Urban\n"

	d, err := ReadCSV(strings.NewReader(content), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "delivery_person_age", "delivery_person_rating", "city"}, d.Fields())
	require.Equal(t, 3, d.Len())

	v, _ := d.At(0, "delivery_person_age")
	assert.Equal(t, Int(34), v)
	v, _ = d.At(0, "delivery_person_rating")
	assert.Equal(t, Float(4.5), v)
	v, _ = d.At(0, "city")
	assert.Equal(t, String("Metropolitan"), v)

	// "NaN " and the empty cell both load as missing.
	v, _ = d.At(1, "delivery_person_age")
	assert.True(t, v.IsMissing())
	v, _ = d.At(2, "delivery_person_rating")
	assert.True(t, v.IsMissing())
}

func TestReadCSV_StripsByteOrderMark(t *testing.T) {
	content := "\xEF\xBB\xBFid,city\n1,Urban\n"

	d, err := ReadCSV(strings.NewReader(content), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "city"}, d.Fields())
}

func TestReadCSV_PadsShortRecords(t *testing.T) {
	content := "id,city,festival\n1,Urban\n"

	d, err := ReadCSV(strings.NewReader(content), DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())

	v, _ := d.At(0, "festival")
	assert.True(t, v.IsMissing())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "empty content", content: "", wantMsg: "empty"},
		{name: "duplicate header", content: "id,id\n1,2\n", wantMsg: "duplicate field"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.content), DefaultLoadOptions())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseCell(t *testing.T) {
	opts := DefaultLoadOptions()
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{name: "integer", raw: "42", want: Int(42)},
		{name: "negative integer", raw: "-7", want: Int(-7)},
		{name: "float", raw: "4.5", want: Float(4.5)},
		{name: "string", raw: "motorcycle", want: String("motorcycle")},
		{name: "whitespace trimmed", raw: " 34 ", want: Int(34)},
		{name: "empty is missing", raw: "", want: Missing()},
		{name: "nan token is missing", raw: "NaN ", want: Missing()},
		{name: "time stays a string", raw: "21:55:00", want: String("21:55:00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.raw, opts))
		})
	}
}
