package catalog_test

import (
	"folio/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	t.Run("empty title returns a ValidationError", func(t *testing.T) {
		var verr *catalog.ValidationError
		assert.ErrorAs(t, catalog.ValidateTitle(""), &verr)
	})

	t.Run("whitespace-only title returns a ValidationError", func(t *testing.T) {
		err := catalog.ValidateTitle("   \t\n  ")

		var verr *catalog.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.EqualError(t, err, "project title cannot be empty")
	})

	t.Run("valid title returns nil", func(t *testing.T) {
		assert.NoError(t, catalog.ValidateTitle("Redstone Computer"))
	})
}

func TestFields_Normalize(t *testing.T) {
	f := catalog.Fields{
		Title:        "  Title ",
		Description:  "\tdesc\n",
		Technologies: " Go ",
		Link:         " https://example.com ",
		Image:        " ",
	}

	got := f.Normalize()

	assert.Equal(t, catalog.Fields{
		Title:        "Title",
		Description:  "desc",
		Technologies: "Go",
		Link:         "https://example.com",
	}, got)
	assert.Equal(t, "  Title ", f.Title, "original is untouched")
}

func TestProject_Optionals(t *testing.T) {
	t.Run("empty link and image are absent", func(t *testing.T) {
		p := catalog.Project{Title: "x"}

		assert.False(t, p.HasLink())
		assert.False(t, p.HasImage())
	})

	t.Run("non-empty link and image are present", func(t *testing.T) {
		p := catalog.Project{Title: "x", Link: "https://example.com", Image: "https://example.com/a.png"}

		assert.True(t, p.HasLink())
		assert.True(t, p.HasImage())
	})
}

func TestSeedProjects(t *testing.T) {
	t.Run("three projects with ids 0 to 2", func(t *testing.T) {
		seed := catalog.SeedProjects()

		assert.Equal(t, []int{0, 1, 2}, ids(seed))
		for _, p := range seed {
			assert.NotEmpty(t, p.Title)
			assert.True(t, p.HasLink())
			assert.False(t, p.HasImage())
		}
	})

	t.Run("each call returns an independent slice", func(t *testing.T) {
		a := catalog.SeedProjects()
		a[0].Title = "changed"

		b := catalog.SeedProjects()

		assert.Equal(t, "Minecraft Data Analysis Tool", b[0].Title)
	})
}
