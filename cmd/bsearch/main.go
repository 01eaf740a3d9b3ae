package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/scottcagno/searchbench/pkg/logger"
	"github.com/scottcagno/searchbench/pkg/search"
)

var target = flag.Float64("target", 5.6, "value to search for")

var defaultFloats = []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9}

func parseFloats(args []string) ([]float64, error) {
	if len(args) == 0 {
		return append([]float64(nil), defaultFloats...), nil
	}
	floats := make([]float64, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", arg, err)
		}
		floats = append(floats, f)
	}
	return floats, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-target x] [value ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.NewLogger(os.Stderr)
	floats, err := parseFloats(flag.Args())
	if err != nil {
		log.Fatalf("parsing values: %v", err)
	}
	// the search requires ascending input
	sort.Float64s(floats)

	iterations, bound, ok := search.BinarySearchBound(floats, *target)
	if !ok {
		fmt.Printf("iterations: %d, bound: none\n", iterations)
		return
	}
	fmt.Printf("iterations: %d, bound: %v\n", iterations, bound)
}
