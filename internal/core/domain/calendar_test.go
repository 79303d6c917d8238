package domain

import (
	"reflect"
	"testing"
)

func TestGroupByDate(t *testing.T) {
	shifts := []Shift{
		{ID: "a", Date: "2024-03-01"},
		{ID: "b", Date: "2024-03-10"},
		{ID: "c", Date: "2024-03-01"},
		{ID: "d", Date: "2023-12-31"},
		{ID: "e", Date: "2024-03-10"},
	}

	g := GroupByDate(shifts)

	total := 0
	for _, bucket := range g {
		total += len(bucket)
	}
	if total != len(shifts) {
		t.Fatalf("expected %d shifts across buckets, got %d", len(shifts), total)
	}

	if ids := shiftIDs(g["2024-03-01"]); !reflect.DeepEqual(ids, []string{"a", "c"}) {
		t.Errorf("bucket order not preserved: %v", ids)
	}
	if ids := shiftIDs(g["2024-03-10"]); !reflect.DeepEqual(ids, []string{"b", "e"}) {
		t.Errorf("bucket order not preserved: %v", ids)
	}

	want := []Date{"2024-03-10", "2024-03-01", "2023-12-31"}
	if got := g.Dates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("dates not most-recent-first: %v", got)
	}

	days := g.Days()
	if len(days) != 3 || days[0].Date != "2024-03-10" || len(days[0].Shifts) != 2 {
		t.Fatalf("unexpected days: %+v", days)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	g := GroupByDate(nil)
	if len(g) != 0 || len(g.Dates()) != 0 {
		t.Fatalf("expected empty grouping, got %v", g)
	}
}

func shiftIDs(shifts []Shift) []string {
	ids := make([]string, len(shifts))
	for i, s := range shifts {
		ids[i] = s.ID
	}
	return ids
}
