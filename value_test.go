package ldraw_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/ldraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		want  ldraw.Value
	}{
		{name: "decimal becomes float", field: "3.0", want: ldraw.Float(3)},
		{name: "negative decimal", field: "-12.5", want: ldraw.Float(-12.5)},
		{name: "integer", field: "16", want: ldraw.Int(16)},
		{name: "negative integer", field: "-4", want: ldraw.Int(-4)},
		{name: "file name stays text", field: "part.dat", want: ldraw.Text("part.dat")},
		{name: "path stays text", field: `s\3001s01.dat`, want: ldraw.Text(`s\3001s01.dat`)},
		{name: "direct colour stays text", field: "0x2FF0000", want: ldraw.Text("0x2FF0000")},
		{name: "word stays text", field: "STEP", want: ldraw.Text("STEP")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ldraw.Convert(tt.field))
		})
	}
}

func TestValue_Number(t *testing.T) {
	t.Parallel()

	n, ok := ldraw.Int(16).Number()
	assert.True(t, ok)
	assert.InDelta(t, 16.0, n, 0)

	n, ok = ldraw.Float(3.0).Number()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, n, 0)

	_, ok = ldraw.Text("part.dat").Number()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "16", ldraw.Int(16).String())
	assert.Equal(t, "3", ldraw.Float(3.0).String())
	assert.Equal(t, "-0.5", ldraw.Float(-0.5).String())
	assert.Equal(t, "part.dat", ldraw.Text("part.dat").String())
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	// Given values of every kind
	values := []ldraw.Value{ldraw.Int(16), ldraw.Float(2.5), ldraw.Text("0x2FF0000")}

	// When I marshal them
	b, err := json.Marshal(values)

	// Then numbers stay numbers and text is quoted
	require.NoError(t, err)
	assert.JSONEq(t, `[16, 2.5, "0x2FF0000"]`, string(b))
}
