// seehuhn.de/go/chaos - chaos-game fractal images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bench times repeated runs of a function and reports the
// results.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result holds the timings of a benchmark.
type Result struct {
	Name  string
	Times []time.Duration // one entry per repetition, in repetition order
}

// Run calls fn once for every repetition i = 0, ..., repetitions-1 and
// measures the time of each call. Up to workers calls run concurrently;
// workers <= 0 means no limit.
//
// Progress is written to w in the form
//
//	Running benchmark: name
//	...
//	Average: 12.34 ms, stdev: 0.56 ms
//
// with one dot per finished repetition. A single repetition is reported
// as "Time: 12.34 ms" instead.
func Run(ctx context.Context, w io.Writer, name string, repetitions, workers int, fn func(ctx context.Context, i int) error) (*Result, error) {
	res := &Result{
		Name:  name,
		Times: make([]time.Duration, repetitions),
	}

	fmt.Fprintf(w, "Running benchmark: %s\n", name)

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i := range repetitions {
		eg.Go(func() error {
			start := time.Now()
			if err := fn(ctx, i); err != nil {
				return err
			}
			res.Times[i] = time.Since(start)

			mu.Lock()
			fmt.Fprint(w, ".")
			mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}

	if repetitions == 1 {
		fmt.Fprintf(w, "Time: %.2f ms\n", res.MeanMillis())
	} else {
		fmt.Fprintf(w, "Average: %.2f ms, stdev: %.2f ms\n", res.MeanMillis(), res.StdevMillis())
	}
	return res, nil
}

// MeanMillis returns the mean run time in milliseconds.
func (r *Result) MeanMillis() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range r.Times {
		sum += millis(d)
	}
	return sum / float64(len(r.Times))
}

// StdevMillis returns the sample standard deviation of the run times in
// milliseconds, or 0 if there are fewer than two runs.
func (r *Result) StdevMillis() float64 {
	n := len(r.Times)
	if n < 2 {
		return 0
	}
	mean := r.MeanMillis()
	ss := 0.0
	for _, d := range r.Times {
		dev := millis(d) - mean
		ss += dev * dev
	}
	return math.Sqrt(ss / float64(n-1))
}

var csvHeader = []string{"timestamp_iso", "name", "rep_id", "time_ms"}

// WriteCSV writes one line per repetition of every result, preceded by
// a header line. All lines carry the given timestamp.
func WriteCSV(w io.Writer, stamp time.Time, results ...*Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	ts := stamp.UTC().Format(time.RFC3339)
	for _, r := range results {
		for i, d := range r.Times {
			rec := []string{
				ts,
				r.Name,
				strconv.Itoa(i),
				strconv.FormatFloat(millis(d), 'f', 3, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
