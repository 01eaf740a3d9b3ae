package search_test

import (
	"fmt"

	"github.com/scottcagno/searchbench/pkg/search"
)

func ExampleBinarySearchBound() {
	floats := []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9}

	iterations, bound, ok := search.BinarySearchBound(floats, 5.6)
	fmt.Println(iterations, bound, ok)

	iterations, _, ok = search.BinarySearchBound(floats, 100.0)
	fmt.Println(iterations, ok)
	// Output:
	// 3 6.6 true
	// 4 false
}

func ExampleSearchers() {
	text, pattern := "Цей алгоритм шукає підрядок", "алгоритм"
	for _, s := range search.Searchers() {
		fmt.Println(s, s.FindIndexString(text, pattern), s.FindIndexRunes([]rune(text), []rune(pattern)))
	}
	// Output:
	// KMP 7 4
	// Boyer-Moore 7 4
	// Rabin-Karp 7 4
}
