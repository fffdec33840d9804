// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
)

// WriteText renders r in the classic line format:
//
//	Time of transpose: <sec> sec
//	Time of blocked transpose with <b> blocks: <sec> sec
//
// followed by "Incorrect !" when a result failed verification.
func WriteText(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	if r.Naive.Rejected() {
		ew.printf("Transpose rejected: %v\n", r.Naive.Err)
	} else {
		ew.printf("Time of transpose: %s sec\n", seconds(r.Naive))
		if !r.Naive.Correct {
			ew.printf("Incorrect !\n")
		}
	}
	for _, m := range r.Blocked {
		if m.Rejected() {
			ew.printf("Blocked transpose with %d blocks rejected: %v\n", m.BlockSize, m.Err)
			continue
		}
		ew.printf("Time of blocked transpose with %d blocks: %s sec\n", m.BlockSize, seconds(m))
		if !m.Correct {
			ew.printf("Incorrect blocked transpose with %d blocks !\n", m.BlockSize)
		}
	}

	return errors.Trace(ew.err)
}

// WriteTable renders r as a host summary line followed by one table row per
// measurement.
func WriteTable(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	ew.printf("matrix %d×%d, seed %d, %d run(s) each\n", r.Size, r.Size, r.Seed, r.Repeats)
	ew.printf("host %s\n", hostLine(r))
	if ew.err != nil {
		return errors.Trace(ew.err)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Block", "Min (s)", "Mean (s)", "Speedup", "Correct")
	for _, m := range append([]Measurement{r.Naive}, r.Blocked...) {
		if err := table.Append(row(r, m)); err != nil {
			return errors.Trace(err)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Trace(err)
	}
	if best, ok := r.Best(); ok {
		ew.printf("best block size: %d (%.2fx)\n", best.BlockSize, r.Speedup(best))
	}

	return errors.Trace(ew.err)
}

func row(r *Report, m Measurement) []string {
	block := "-"
	if m.BlockSize > 0 {
		block = strconv.Itoa(m.BlockSize)
	}
	if m.Rejected() {
		return []string{m.Strategy.String(), block, "-", "-", "-", "rejected"}
	}
	speedup := "-"
	if s := r.Speedup(m); s > 0 {
		speedup = strconv.FormatFloat(s, 'f', 2, 64) + "x"
	}
	correct := "yes"
	if !m.Correct {
		correct = "NO"
	}

	return []string{
		m.Strategy.String(),
		block,
		formatSeconds(m.Min.Seconds()),
		formatSeconds(m.Mean.Seconds()),
		speedup,
		correct,
	}
}

// hostLine lists the known host facts; unknown (non-positive) sizes are skipped.
func hostLine(r *Report) string {
	h := r.Host
	parts := []string{h.Arch}
	if h.Brand != "" {
		parts = append(parts, h.Brand)
	}
	if h.LogicalCores > 0 {
		parts = append(parts, fmt.Sprintf("%d logical cores", h.LogicalCores))
	}
	for _, c := range []struct {
		name string
		size int
	}{{"L1d", h.L1D}, {"L2", h.L2}, {"L3", h.L3}} {
		if c.size > 0 {
			parts = append(parts, fmt.Sprintf("%s %d KiB", c.name, c.size/1024))
		}
	}
	if h.CacheLine > 0 {
		parts = append(parts, fmt.Sprintf("cache line %d B", h.CacheLine))
	}
	if len(r.Host.Features) > 0 {
		parts = append(parts, strings.Join(r.Host.Features, ","))
	}

	return strings.Join(parts, ", ")
}

// seconds prints the fastest run the way a default-precision float stream would.
func seconds(m Measurement) string { return formatSeconds(m.Min.Seconds()) }

func formatSeconds(s float64) string { return strconv.FormatFloat(s, 'g', 6, 64) }

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
