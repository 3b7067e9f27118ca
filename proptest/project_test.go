package proptest

import (
	"errors"
	"folio/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Normalize_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fields := fieldsGen().Draw(t, "fields")

		once := fields.Normalize()
		if twice := once.Normalize(); twice != once {
			t.Fatalf("Normalize not idempotent: %+v then %+v", once, twice)
		}
		if err := once.Validate(); err != nil {
			t.Fatalf("valid fields rejected: %v", err)
		}
	})
}

func TestProperty_BlankTitle_Rejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := blankGen.Draw(t, "title")

		err := catalog.ValidateTitle(title)

		var verr *catalog.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("title %q accepted", title)
		}
	})
}

func TestProperty_UnicodeTitle_Preserved(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		title := unicodeWords.Draw(h.T, "title")

		p, err := h.Catalog.Create(catalog.Fields{Title: title})
		if err != nil {
			h.T.Fatalf("create failed: %v", err)
		}

		got, err := h.Reopen().Get(p.ID)
		if err != nil {
			h.T.Fatalf("project %d missing after reload: %v", p.ID, err)
		}
		if got.Title != title {
			h.T.Fatalf("title %q became %q", title, got.Title)
		}
	})
}
