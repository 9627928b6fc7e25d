package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by results that know their own table layout.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// PrintTable writes r as a borderless, left-aligned table.
func PrintTable(w io.Writer, r TableRenderer) error {
	table := newTable(w)
	table.SetHeader(r.Headers())
	table.SetAutoFormatHeaders(true)
	table.SetColumnSeparator("")
	table.AppendBulk(r.Rows())
	table.Render()
	return nil
}

// PrintKeyValue writes one "key: value" row per pair.
func PrintKeyValue(w io.Writer, pairs [][2]string) error {
	table := newTable(w)
	table.SetAutoFormatHeaders(false)
	table.SetColumnSeparator(":")
	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

// TableData is a TableRenderer built row by row.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData returns an empty table with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{headers: headers, rows: [][]string{}}
}

// AddRow appends a row.
func (t *TableData) AddRow(row ...string) { t.rows = append(t.rows, row) }

func (t *TableData) Headers() []string { return t.headers }
func (t *TableData) Rows() [][]string  { return t.rows }

// Len returns the number of rows.
func (t *TableData) Len() int { return len(t.rows) }

// Flatten lists every leaf of v's display tree as a FIELD/VALUE row. Paths
// join struct fields with dots and index lists with brackets, for example
// "Tx.Operations[0].Body.Type".
func Flatten(v any) *TableData {
	t := NewTableData("FIELD", "VALUE")
	flatten(t, "", Tree(v))
	return t
}

func flatten(t *TableData, path string, node any) {
	switch n := node.(type) {
	case Fields:
		if len(n) == 0 {
			t.AddRow(label(path), "{}")
			return
		}
		for _, f := range n {
			flatten(t, joinPath(path, f.Name), f.Value)
		}
	case []any:
		if len(n) == 0 {
			t.AddRow(label(path), "[]")
			return
		}
		for i, item := range n {
			flatten(t, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case nil:
		t.AddRow(label(path), "-")
	default:
		t.AddRow(label(path), fmt.Sprint(n))
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return strings.Join([]string{path, name}, ".")
}

func label(path string) string {
	if path == "" {
		return "(value)"
	}
	return path
}
