package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(width int) *LipglossRenderer {
	return NewLipglossRenderer(&bytes.Buffer{}, width)
}

func TestRenderProjectList(t *testing.T) {
	t.Run("empty view shows the placeholder", func(t *testing.T) {
		out := newTestRenderer(40).RenderProjectList(ProjectListView{})

		assert.Equal(t, "No Projects Yet\n  Start building your portfolio by adding your first project!\n", out)
	})

	t.Run("title and id share the first line", func(t *testing.T) {
		out := newTestRenderer(30).RenderProjectList(ProjectListView{Items: []ProjectListItem{
			{ID: 12, Title: "Redstone CPU", Technologies: "Minecraft", Link: "https://example.com"},
		}})

		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Equal(t, "Redstone CPU"+strings.Repeat(" ", 15)+"#12", lines[0])
		assert.Equal(t, "  Minecraft", lines[1])
		assert.Equal(t, "  https://example.com", lines[2])
	})

	t.Run("narrow width keeps one space before the id", func(t *testing.T) {
		out := newTestRenderer(5).RenderProjectList(ProjectListView{Items: []ProjectListItem{
			{ID: 1, Title: "A long project title"},
		}})

		assert.True(t, strings.HasPrefix(out, "A long project title #1\n"))
	})

	t.Run("placeholders for missing optionals", func(t *testing.T) {
		out := newTestRenderer(40).RenderProjectList(ProjectListView{Items: []ProjectListItem{
			{ID: 0, Title: "Bare"},
		}})

		assert.Contains(t, out, "  Various technologies\n")
		assert.Contains(t, out, "  No link available\n")
	})

	t.Run("items are separated by a blank line", func(t *testing.T) {
		out := newTestRenderer(40).RenderProjectList(ProjectListView{Items: []ProjectListItem{
			{ID: 0, Title: "One"},
			{ID: 1, Title: "Two"},
		}})

		assert.Equal(t, 1, strings.Count(out, "\n\n"))
		assert.True(t, strings.HasSuffix(out, "No link available\n"))
	})
}

func TestRenderProject(t *testing.T) {
	t.Run("includes the image line", func(t *testing.T) {
		out := newTestRenderer(80).RenderProject(ProjectListItem{ID: 3, Title: "Pixel Art", Image: "https://example.com/a.png"})

		assert.True(t, strings.HasSuffix(out, "  image: https://example.com/a.png\n"))
	})

	t.Run("shortens long data uris", func(t *testing.T) {
		image := "data:image/png;base64," + strings.Repeat("A", 200)
		out := newTestRenderer(40).RenderProject(ProjectListItem{ID: 3, Title: "Pixel Art", Image: image})

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		last := lines[len(lines)-1]
		assert.True(t, strings.HasSuffix(last, "..."))
		assert.Len(t, last, len("  image: ")+31)
	})

	t.Run("no image line without an image", func(t *testing.T) {
		out := newTestRenderer(80).RenderProject(ProjectListItem{ID: 3, Title: "Pixel Art"})

		assert.NotContains(t, out, "image:")
	})
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	assert.Equal(t, "abcdefg...", shorten("abcdefghijklmnop", 10))
	assert.Equal(t, "abcdef", shorten("abcdef", 3))
}
