package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	techPlaceholder = "Various technologies"
	noLink          = "No link available"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle lipgloss.Style
	idStyle    lipgloss.Style
	techStyle  lipgloss.Style
	descStyle  lipgloss.Style
	linkStyle  lipgloss.Style
	mutedStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:      width,
		r:          r,
		titleStyle: r.NewStyle().Bold(true),
		idStyle:    r.NewStyle().Faint(true),
		techStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
		descStyle:  r.NewStyle(),
		linkStyle:  r.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		mutedStyle: r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderProjectList(view ProjectListView) string {
	if view.IsEmpty() {
		return "No Projects Yet\n" +
			r.mutedStyle.Render("  Start building your portfolio by adding your first project!") + "\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		sb.WriteString(r.renderItem(item))
		if i < len(view.Items)-1 {
			sb.WriteString("\n\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// RenderProject is the detailed view of one project, including its image.
func (r *LipglossRenderer) RenderProject(item ProjectListItem) string {
	var sb strings.Builder
	sb.WriteString(r.renderItem(item))
	sb.WriteString("\n")
	if item.Image != "" {
		sb.WriteString(r.mutedStyle.Render("  image: " + shorten(item.Image, r.width-9)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ProjectListItem) string {
	title := r.titleStyle.Render(item.Title)
	idEl := r.idStyle.Render(fmt.Sprintf("#%d", item.ID))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(idEl))
	lines := []string{title + strings.Repeat(" ", padding) + idEl}

	if item.Technologies != "" {
		lines = append(lines, r.techStyle.Render("  "+item.Technologies))
	} else {
		lines = append(lines, r.mutedStyle.Render("  "+techPlaceholder))
	}
	if item.Description != "" {
		lines = append(lines, r.descStyle.Render("  "+item.Description))
	}
	if item.Link != "" {
		lines = append(lines, "  "+r.linkStyle.Render(item.Link))
	} else {
		lines = append(lines, r.mutedStyle.Render("  "+noLink))
	}

	return strings.Join(lines, "\n")
}

// shorten keeps long values such as inline data URIs on one line.
func shorten(s string, limit int) string {
	if limit < 4 || len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
