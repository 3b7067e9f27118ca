package proptest

import (
	"folio/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertProjectsEqual(t *rapid.T, expected, actual []catalog.Project) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
}

func assertIDs(t *rapid.T, expected []int, actual []catalog.Project) {
	t.Helper()
	got := make([]int, len(actual))
	for i, p := range actual {
		got[i] = p.ID
	}
	if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("[%s] violated: ids mismatch (-model +real):\n%s", InvModelConsistent, diff)
	}
}
