package common

import (
	"reflect"
	"testing"
)

func TestChunks(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		n    int
		want [][]int
	}{
		{"even_split", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"short_tail", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"one_group", []int{1, 2, 3}, 5, [][]int{{1, 2, 3}}},
		{"singletons", []int{1, 2}, 1, [][]int{{1}, {2}}},
		{"degenerate_n", []int{1, 2, 3}, 0, [][]int{{1, 2, 3}}},
		{"empty", nil, 3, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Chunks(c.in, c.n)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Chunks(%v, %d) = %v, want %v", c.in, c.n, got, c.want)
			}
		})
	}
}
