// Package ui holds the interactive form for adding a project and the
// summary printed once it is saved.
package ui

import (
	"fmt"
	"folio/internal/catalog"
	"folio/internal/present"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	addedSymbol   = "◆"
	filledSymbol  = "◇"
	emptySymbol   = "○"
	separator     = " · "
	borderTop     = "┌"
	borderSide    = "│"
	borderBottom  = "└"
	checkSymbol   = "✓"
	maxValueWidth = 60

	noLinkPlaceholder = "No link available"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// NewProjectForm asks for the title first, then the descriptive fields,
// then the link and image. Answers are written into f.
func NewProjectForm(f *catalog.Fields, validateTitle func(string) error) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(validateTitle),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Technologies").
				Description("Comma separated, e.g. Go, SQLite").
				Value(&f.Technologies),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Link").
				Value(&f.Link),
			huh.NewInput().
				Title("Image").
				Description("Image URL or data:image URI").
				Value(&f.Image),
		),
	).WithTheme(WizardTheme())
}

type Field struct {
	Label string
	Value string
	// Placeholder stands in for an empty Value, as on the catalog page.
	Placeholder string
}

// ProjectFields lists the optional fields of p in form order.
func ProjectFields(p catalog.Project) []Field {
	return []Field{
		{Label: "Description", Value: p.Description},
		{Label: "Technologies", Value: p.Technologies, Placeholder: present.TechnologiesPlaceholder},
		{Label: "Link", Value: p.Link, Placeholder: noLinkPlaceholder},
		{Label: "Image", Value: p.Image},
	}
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderAdded confirms a new project with its id, its fields and the
// backend it was saved to. Empty fields without a placeholder are left out.
func RenderAdded(p catalog.Project, backend string) string {
	var b strings.Builder

	border := borderStyle()
	side := border.Render(borderSide)

	b.WriteString(border.Render(borderTop))
	b.WriteString(" " + addedSymbol + " Added " + displayValue(p.Title) + " #" + strconv.Itoa(p.ID) + "\n")

	for _, f := range ProjectFields(p) {
		if line, ok := renderField(f); ok {
			b.WriteString(side + " " + line + "\n")
		}
	}

	b.WriteString(side + "\n")
	b.WriteString(side + " " + checkSymbol + " Saved to the " + backend + " store\n")
	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) (string, bool) {
	switch {
	case strings.TrimSpace(f.Value) != "":
		return filledSymbol + " " + f.Label + separator + displayValue(f.Value), true
	case f.Placeholder != "":
		return emptySymbol + " " + f.Label + separator + f.Placeholder, true
	default:
		return "", false
	}
}

// displayValue keeps a field on one line: multi-line descriptions are
// joined, inline images are summarized and long values are cut.
func displayValue(v string) string {
	if s, ok := inlineImage(v); ok {
		return s
	}
	v = strings.Join(strings.Fields(v), " ")
	if len([]rune(v)) <= maxValueWidth {
		return v
	}
	return string([]rune(v)[:maxValueWidth-1]) + "…"
}

// inlineImage names a data URI by media type and payload size.
func inlineImage(v string) (string, bool) {
	rest, ok := strings.CutPrefix(v, "data:")
	if !ok {
		return "", false
	}
	meta, data, ok := strings.Cut(rest, ",")
	mediaType, _, _ := strings.Cut(meta, ";")
	if !ok || mediaType == "" {
		return "", false
	}
	return fmt.Sprintf("inline %s, %s", mediaType, humanize.Bytes(uint64(len(data)))), true
}
