package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchedulerEach(t *testing.T) {
	for name, sched := range map[string]Scheduler{
		"direct":      Direct(),
		"cooperative": Cooperative(3),
		"default":     Cooperative(0),
	} {
		t.Run(name, func(t *testing.T) {
			var seen []int
			sched.Each(10, func(i int) bool {
				seen = append(seen, i)
				return i < 6
			})

			want := []int{0, 1, 2, 3, 4, 5, 6}
			if diff := cmp.Diff(want, seen); diff != "" {
				t.Errorf("visited indices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchedulerRun(t *testing.T) {
	for name, sched := range map[string]Scheduler{
		"direct":      Direct(),
		"cooperative": Cooperative(1),
	} {
		t.Run(name, func(t *testing.T) {
			results := make([]int, 8)
			sched.Run(len(results), func(i int) {
				results[i] = i * i
			})

			want := []int{0, 1, 4, 9, 16, 25, 36, 49}
			if diff := cmp.Diff(want, results); diff != "" {
				t.Errorf("results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
