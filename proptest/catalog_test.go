package proptest

import (
	"errors"
	"folio/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Create_AssignsNextID(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		before := h.Catalog.NextID()
		count := h.Catalog.Count()

		p := h.MustCreate()

		if p.ID != before {
			h.T.Fatalf("created id %d, want %d", p.ID, before)
		}
		if h.Catalog.NextID() != before+1 {
			h.T.Fatalf("NextID %d, want %d", h.Catalog.NextID(), before+1)
		}
		if h.Catalog.Count() != count+1 {
			h.T.Fatalf("Count %d, want %d", h.Catalog.Count(), count+1)
		}
		list := h.Catalog.List()
		if list[len(list)-1] != p {
			h.T.Fatalf("created project is not last: %+v", list[len(list)-1])
		}
		verifyTrimmed(h.T, p)
	})
}

func TestProperty_Create_NormalizesFields(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		fields := fieldsGen().Draw(h.T, "fields")

		p, err := h.Catalog.Create(fields)
		if err != nil {
			h.T.Fatalf("create failed: %v", err)
		}

		want := fields.Normalize()
		got := catalog.Fields{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
			Image:        p.Image,
		}
		if got != want {
			h.T.Fatalf("stored %+v, want %+v", got, want)
		}
	})
}

func TestProperty_Create_BlankTitleChangesNothing(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		h.CreateProjects(0, 3)
		before := h.Catalog.List()
		next := h.Catalog.NextID()

		_, err := h.Catalog.Create(invalidFieldsGen().Draw(h.T, "fields"))

		var verr *catalog.ValidationError
		if !errors.As(err, &verr) {
			h.T.Fatalf("expected a validation error, got %v", err)
		}
		if verr.Field != "title" {
			h.T.Fatalf("validation error on %q, want title", verr.Field)
		}
		assertProjectsEqual(h.T, before, h.Catalog.List())
		if h.Catalog.NextID() != next {
			h.T.Fatalf("NextID moved from %d to %d", next, h.Catalog.NextID())
		}
	})
}

func TestProperty_Delete_NeverReusesIDs(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		seen := make(map[int]bool)
		for _, p := range h.Catalog.List() {
			seen[p.ID] = true
		}

		steps := rapid.IntRange(1, 30).Draw(h.T, "steps")
		for range steps {
			list := h.Catalog.List()
			if len(list) > 0 && rapid.Bool().Draw(h.T, "delete") {
				victim := rapid.SampledFrom(list).Draw(h.T, "victim")
				if _, err := h.Catalog.Delete(victim.ID); err != nil {
					h.T.Fatalf("delete failed: %v", err)
				}
				continue
			}
			p := h.MustCreate()
			if seen[p.ID] {
				h.T.Fatalf("[%s] violated: id %d handed out twice", InvIDsUnique, p.ID)
			}
			seen[p.ID] = true
		}
		verifyStructuralInvariants(h.T, h.Catalog)
	})
}

func TestProperty_Delete_UnknownIDIsNoop(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		h.CreateProjects(0, 3)
		before := h.Catalog.List()

		id := rapid.IntRange(h.Catalog.NextID(), h.Catalog.NextID()+100).Draw(h.T, "id")
		removed, err := h.Catalog.Delete(id)

		if err != nil || removed {
			h.T.Fatalf("Delete(%d) = %v, %v; want false, nil", id, removed, err)
		}
		assertProjectsEqual(h.T, before, h.Catalog.List())
	})
}
