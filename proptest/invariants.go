package proptest

import (
	"folio/internal/catalog"
	"strings"

	"pgregory.net/rapid"
)

const (
	InvCountEqualsListLen = "count-equals-list-len"
	InvIDsUnique          = "ids-unique"
	InvIDsAscending       = "ids-ascending"
	InvIDsBelowNext       = "ids-below-next"
	InvTitleNotBlank      = "title-not-blank"
	InvFieldsTrimmed      = "fields-trimmed"
	InvModelConsistent    = "model-consistent"
	InvSaveLoadRoundTrip  = "save-load-round-trip"
	InvEmptyBlockIffEmpty = "empty-block-iff-empty"
)

func verifyStructuralInvariants(t *rapid.T, cat *catalog.Catalog) {
	t.Helper()
	list := cat.List()
	if cat.Count() != len(list) {
		t.Fatalf("[%s] violated: Count()=%d but len(List())=%d", InvCountEqualsListLen, cat.Count(), len(list))
	}

	next := cat.NextID()
	seen := make(map[int]bool, len(list))
	for i, p := range list {
		if seen[p.ID] {
			t.Fatalf("[%s] violated: duplicate id %d", InvIDsUnique, p.ID)
		}
		seen[p.ID] = true

		if i > 0 && list[i-1].ID >= p.ID {
			t.Fatalf("[%s] violated: id %d follows %d", InvIDsAscending, p.ID, list[i-1].ID)
		}
		if p.ID >= next {
			t.Fatalf("[%s] violated: id %d with NextID %d", InvIDsBelowNext, p.ID, next)
		}
		if strings.TrimSpace(p.Title) == "" {
			t.Fatalf("[%s] violated: project %d has a blank title", InvTitleNotBlank, p.ID)
		}
	}
}

func verifyTrimmed(t *rapid.T, p catalog.Project) {
	t.Helper()
	for _, v := range []string{p.Title, p.Description, p.Technologies, p.Link, p.Image} {
		if v != strings.TrimSpace(v) {
			t.Fatalf("[%s] violated: project %d stores %q", InvFieldsTrimmed, p.ID, v)
		}
	}
}
