package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/scottcagno/searchbench/pkg/util"
)

// WriteReport prints one section per searcher, in the order the searchers
// were run, followed by the fastest searcher of every case.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var order []string
	bySearcher := make(map[string][]Result)
	for _, res := range results {
		if _, ok := bySearcher[res.Searcher]; !ok {
			order = append(order, res.Searcher)
		}
		bySearcher[res.Searcher] = append(bySearcher[res.Searcher], res)
	}
	for _, name := range order {
		fmt.Fprintf(tw, "\n===== %s =====\n", name)
		for _, res := range bySearcher[name] {
			status := fmt.Sprintf("index %d", res.Index)
			if res.Err != nil {
				status += " MISMATCH"
			}
			fmt.Fprintf(tw, "%s:\t%s\t%s/op\t%s\n", res.Case, util.Seconds(res.Elapsed), res.PerOp(), status)
		}
		fmt.Fprintln(tw, strings.Repeat("-", 40))
	}
	if fastest := Fastest(results); len(fastest) > 0 {
		fmt.Fprintln(tw, "\n===== fastest =====")
		for _, res := range fastest {
			fmt.Fprintf(tw, "%s:\t%s\t%s\n", res.Case, res.Searcher, util.Seconds(res.Elapsed))
		}
	}
	return tw.Flush()
}

// Fastest returns, for every case in order of first appearance, the result
// with the least elapsed time. Results with a wrong answer are left out.
func Fastest(results []Result) []Result {
	var order []string
	best := make(map[string]Result)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		cur, ok := best[res.Case]
		if !ok {
			order = append(order, res.Case)
		}
		if !ok || res.Elapsed < cur.Elapsed {
			best[res.Case] = res
		}
	}
	fastest := make([]Result, 0, len(order))
	for _, name := range order {
		fastest = append(fastest, best[name])
	}
	return fastest
}

// Total sums the elapsed time of all results of one searcher.
func Total(results []Result, searcher string) time.Duration {
	var d time.Duration
	for _, res := range results {
		if res.Searcher == searcher {
			d += res.Elapsed
		}
	}
	return d
}
