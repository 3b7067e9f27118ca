package proptest

import (
	"folio/internal/catalog"

	"pgregory.net/rapid"
)

var (
	wordGen      = rapid.StringMatching(`[a-zA-Z0-9]{1,12}`)
	paddingGen   = rapid.SampledFrom([]string{"", " ", "  ", "\t", "\n", " \t "})
	blankGen     = rapid.SampledFrom([]string{"", " ", "  ", "\t", "\n", " \t\n "})
	techListGen  = rapid.SampledFrom([]string{"", "Go", "Go, SQLite", "Python, Pandas", "Rust, WebAssembly, Canvas"})
	linkGen      = rapid.SampledFrom([]string{"", "https://example.com", "https://github.com/example/repo", "http://localhost:8080/demo"})
	imageGen     = rapid.SampledFrom([]string{"", "https://example.com/shot.png", "data:image/png;base64,iVBORw0KGgo="})
	unicodeWords = rapid.SampledFrom([]string{"Café", "日本語", "Ünïcödé", "emoji 🚀", "<script>", "Tom & Jerry"})
)

func titleGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		if rapid.Bool().Draw(t, "unicodeTitle") {
			return unicodeWords.Draw(t, "title")
		}
		return wordGen.Draw(t, "title")
	})
}

// fieldsGen draws create input with a valid title and optional surrounding
// whitespace on every field.
func fieldsGen() *rapid.Generator[catalog.Fields] {
	return rapid.Custom(func(t *rapid.T) catalog.Fields {
		pad := func(s, label string) string {
			return paddingGen.Draw(t, label+"Pre") + s + paddingGen.Draw(t, label+"Post")
		}
		return catalog.Fields{
			Title:        pad(titleGen().Draw(t, "title"), "title"),
			Description:  pad(rapid.StringMatching(`[a-zA-Z ]{0,40}`).Draw(t, "description"), "description"),
			Technologies: pad(techListGen.Draw(t, "technologies"), "technologies"),
			Link:         pad(linkGen.Draw(t, "link"), "link"),
			Image:        pad(imageGen.Draw(t, "image"), "image"),
		}
	})
}

func invalidFieldsGen() *rapid.Generator[catalog.Fields] {
	return rapid.Custom(func(t *rapid.T) catalog.Fields {
		return catalog.Fields{
			Title:        blankGen.Draw(t, "blankTitle"),
			Description:  rapid.StringMatching(`[a-z ]{0,20}`).Draw(t, "description"),
			Technologies: techListGen.Draw(t, "technologies"),
			Link:         linkGen.Draw(t, "link"),
		}
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("[{"),
		rapid.Just(`[{"id": 1, "title": "x"`),
		rapid.Just(`{"id": 1}`),
		rapid.Just(`"just a string"`),
		rapid.Just("42"),
		rapid.Just(`[{"id": "one", "title": "x"}]`),
		rapid.Just(`[{"id": 1.5, "title": "x"}]`),
		rapid.Just(`[{"id": 1, "title": ["not", "a", "string"]}]`),
		rapid.Just(`[1, 2, 3]`),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

// storedProjectsGen draws a valid stored sequence: unique ids, not
// necessarily contiguous, in ascending order.
func storedProjectsGen() *rapid.Generator[[]catalog.Project] {
	return rapid.Custom(func(t *rapid.T) []catalog.Project {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		projects := make([]catalog.Project, 0, n)
		id := 0
		for range n {
			id += rapid.IntRange(0, 5).Draw(t, "gap")
			projects = append(projects, catalog.Project{
				ID:           id,
				Title:        titleGen().Draw(t, "title"),
				Technologies: techListGen.Draw(t, "technologies"),
				Link:         linkGen.Draw(t, "link"),
			})
			id++
		}
		return projects
	})
}
