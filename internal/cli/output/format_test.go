package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: " JSON ", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "yml", want: FormatYAML},
		{input: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type point struct {
	X    int32
	Y    int32
	Note *string
}

func TestPrinter_PrintFormats(t *testing.T) {
	v := point{X: 1, Y: -2}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print(v))
	assert.JSONEq(t, `{"X":1,"Y":-2}`, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print(v))
	assert.Equal(t, "X: 1\nY: -2\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(v))
	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "-2")
	assert.NotContains(t, out, "Note")
}

func TestPrinter_TableRenderer(t *testing.T) {
	td := NewTableData("NAME", "SIZE")
	td.AddRow("Asset", "4")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(td))
	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "Asset")
	assert.NotContains(t, buf.String(), "FIELD")
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewPrinter(&buf, Format("xml"), false).Print(1))
}

func TestPrinter_Messages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable, false)
	p.Success("canonical")
	p.Failure("not canonical")
	p.Warning("trailing")
	assert.Equal(t, "canonical\nnot canonical\ntrailing\n", buf.String())

	buf.Reset()
	NewPrinter(&buf, FormatTable, true).Success("ok")
	assert.Equal(t, "\033[32mok\033[0m\n", buf.String())
}
