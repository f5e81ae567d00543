package bench

import (
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"
	"github.com/pbnjay/memory"
)

// Report writes a table with the measurements of a run.
func Report(w io.Writer, results []Measurement) {
	fmt.Fprintf(w, "%s/%s, %d cpus, %s of memory\n\n",
		runtime.GOOS,
		runtime.GOARCH,
		runtime.NumCPU(),
		humanize.Bytes(memory.TotalMemory()))

	columns := []string{
		"strategy",
		"size",
		"rounds",
		"setup",
		"min",
		"avg",
		"speedup",
		"agrees",
	}
	rows := [][]string{}

	for _, m := range results {
		agrees := tui.Green("yes")
		if !m.Agrees {
			agrees = tui.Red("no")
		}
		rows = append(rows, []string{
			m.Strategy,
			humanize.Comma(int64(m.Size)),
			fmt.Sprintf("%d", m.Rounds),
			m.Setup.String(),
			m.Min.String(),
			m.Avg.String(),
			fmt.Sprintf("%.2fx", m.Speedup),
			agrees,
		})
	}

	tui.Table(w, columns, rows)
}
