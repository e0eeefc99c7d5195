package todotxt

import (
	"sort"
	"testing"
)

func TestParTasksMatchesSequential(t *testing.T) {
	sequential := Tasks(sampleList).Collect()

	var parallel []Task
	for task := range ParTasks(sampleList, 4) {
		parallel = append(parallel, task)
	}

	if len(parallel) != len(sequential) {
		t.Fatalf("task count: got %d, want %d", len(parallel), len(sequential))
	}

	// No ordering guarantee across workers; compare as sets via the
	// canonical rendering.
	var got, want []string
	for i := range sequential {
		got = append(got, parallel[i].String())
		want = append(want, sequential[i].String())
	}
	sort.Strings(got)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task set mismatch at %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParTasksDefaultWorkerCount(t *testing.T) {
	count := 0
	for range ParTasks(sampleList, 0) {
		count++
	}
	if count != 5 {
		t.Errorf("task count: got %d, want 5", count)
	}
}

func TestParTasksEmptyInput(t *testing.T) {
	for range ParTasks("", 2) {
		t.Fatal("got a task from empty input")
	}
}

func TestParTasksSingleWorkerSeesEveryLine(t *testing.T) {
	count := 0
	for range ParTasks("a\nb\nc\n\n\nd", 1) {
		count++
	}
	if count != 4 {
		t.Errorf("task count: got %d, want 4", count)
	}
}
