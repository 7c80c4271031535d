package param

import (
	"strings"

	"fxr-query/core/reconcile"
	"fxr-query/core/utils"

	"golang.org/x/text/cases"
)

// TypeS32 is the declared type of signed 32-bit columns.
const TypeS32 = "s32"

// Column describes one table column.
type Column struct {
	// Name is the display name.
	Name         string `json:"name"`
	InternalName string `json:"internal_name"`
	Type         string `json:"type"`
}

// Row is one table row. Cells align with the table's columns.
type Row struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cells []any  `json:"cells"`
}

// Table is one decoded parameter table.
type Table struct {
	ParamType string   `json:"param_type"`
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
}

// IsEffectColumn reports whether a column holds effect ids.
func IsEffectColumn(c Column) bool {
	return c.Type == TypeS32 && strings.Contains(cases.Fold().String(c.Name), "fx")
}

// Scan records the value of every effect cell of t into sink and returns the
// number of cells recorded. Tables whose param type is in excluded are
// skipped. Cells that do not hold an int32 are ignored.
func Scan(t *Table, excluded []string, sink reconcile.Sink) int {
	for _, ex := range excluded {
		if t.ParamType == ex {
			return 0
		}
	}

	var columns []int
	for i, c := range t.Columns {
		if IsEffectColumn(c) {
			columns = append(columns, i)
		}
	}
	if len(columns) == 0 {
		return 0
	}

	recorded := 0
	for _, row := range t.Rows {
		for _, i := range columns {
			if i >= len(row.Cells) {
				continue
			}
			if v, ok := utils.ToInt32(row.Cells[i]); ok {
				sink.Record(v)
				recorded++
			}
		}
	}
	return recorded
}
