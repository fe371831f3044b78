package song

import (
	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/util"
)

// TableLength is the number of rows in an FX table.
const TableLength = 16

// TableRow is one table step: a transpose and three FX cells.
type TableRow struct {
	Transpose uint8    `json:"transpose"`
	FX        [3]fx.FX `json:"fx"`
}

type Table struct {
	Rows [TableLength]TableRow `json:"rows"`
}

func readTable(r *util.Reader) Table {
	var t Table
	for n := range t.Rows {
		row := TableRow{Transpose: r.Read()}
		for i := range row.FX {
			row.FX[i] = fx.Read(r)
		}
		t.Rows[n] = row
	}
	return t
}

func (t Table) write(w *util.Writer) {
	for _, row := range t.Rows {
		w.Write(row.Transpose)
		for _, f := range row.FX {
			f.Write(w)
		}
	}
}
