package messages

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestAddDeduplicatesWithinGroup(t *testing.T) {
	r := NewRegistry()
	r.Add("warnings", "first")
	r.Add("warnings", "second")
	r.Add("warnings", "first")

	if got := r.Count("warnings"); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	want := []string{"first", "second"}
	if got := r.Fetch("warnings"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fetch() = %v, want %v", got, want)
	}
}

func TestAddIgnoresEmptyGroupName(t *testing.T) {
	r := NewRegistry()
	r.Add("", "ignored")
	if got := r.Count(""); got != 0 {
		t.Fatalf("Count(\"\") = %d, want 0", got)
	}
}

func TestGroupsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Add("a", "shared")
	r.Add("b", "shared")
	r.Clear("a")

	if got := r.Count("a"); got != 0 {
		t.Fatalf("Count(a) after Clear = %d, want 0", got)
	}
	if got := r.Count("b"); got != 1 {
		t.Fatalf("Count(b) = %d, want 1", got)
	}
}

func TestFlushReturnsAndEmpties(t *testing.T) {
	r := NewRegistry()
	r.Add("refs", "color.base.black")
	r.Add("refs", "size.spacing.small")

	got := r.Flush("refs")
	want := []string{"color.base.black", "size.spacing.small"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flush() = %v, want %v", got, want)
	}
	if got := r.Count("refs"); got != 0 {
		t.Fatalf("Count() after Flush = %d, want 0", got)
	}
	if got := r.Flush("refs"); len(got) != 0 {
		t.Fatalf("second Flush() = %v, want empty", got)
	}
}

func TestFetchReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add("g", "one")
	got := r.Fetch("g")
	got[0] = "mutated"
	if fresh := r.Fetch("g"); fresh[0] != "one" {
		t.Fatalf("Fetch() exposed internal slice, got %v", fresh)
	}
}

func TestConcurrentAdds(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Add("g", fmt.Sprintf("message-%d", i))
		}(i)
	}
	wg.Wait()
	if got := r.Count("g"); got != 20 {
		t.Fatalf("Count() = %d, want 20", got)
	}
}
