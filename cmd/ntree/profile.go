package main

import (
	"io"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// stage captures wall time and heap growth for one phase of the run.
type stage struct {
	name      string
	elapsed   time.Duration
	allocated uint64
}

// measure runs fn and records its wall time and the heap allocated
// while it ran. TotalAlloc is cumulative, so the delta counts every
// allocation made by fn regardless of later collection.
func measure(name string, fn func()) stage {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)

	return stage{
		name:      name,
		elapsed:   elapsed,
		allocated: after.TotalAlloc - before.TotalAlloc,
	}
}

// printStages renders the per-stage profile as a table.
func printStages(w io.Writer, stages []stage) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stage", "Time", "Allocated"})
	for _, s := range stages {
		table.Append([]string{s.name, s.elapsed.String(), humanize.IBytes(s.allocated)})
	}
	table.Render()
}
