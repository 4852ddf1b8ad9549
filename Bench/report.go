package Bench

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

func seconds(s float64) string {
	return time.Duration(math.Round(s * float64(time.Second))).String()
}

// Render writes one row per step: the prefix size, then each engine's
// cumulative insert time and mean search time.
func Render(w io.Writer, r *Results) error {
	engines := r.Engines()
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"Keys"}
	for _, e := range engines {
		header = append(header, e+" insert", e+" search")
	}
	tbl.AppendHeader(header)

	for i, n := range r.DataSizes {
		row := table.Row{humanize.Comma(int64(n))}
		for _, e := range engines {
			ins := "-"
			if s := r.InsertTimes[e]; i < len(s) {
				ins = seconds(s[i])
			}
			row = append(row, ins, seconds(r.ExecTimes[e][i]))
		}
		tbl.AppendRow(row)
	}
	if len(r.DataSizes) > 0 {
		tbl.AppendFooter(table.Row{fmt.Sprintf("%d steps", len(r.DataSizes))})
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
