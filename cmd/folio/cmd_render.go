package main

import (
	"errors"
	"fmt"
	"folio/internal/present"
	"io"
	"os"
)

type RenderCmd struct {
	Page   bool   `help:"Render the full page instead of the project grid"`
	Output string `short:"o" help:"Write to a file instead of stdout" type:"path"`
}

func (cmd *RenderCmd) Run(g *Globals) error {
	if cmd.Output == "" {
		return cmd.render(g, g.Out)
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", cmd.Output, err)
	}
	if err := writeAndClose(f, func(w io.Writer) error { return cmd.render(g, w) }); err != nil {
		return fmt.Errorf("failed to write %q: %w", cmd.Output, err)
	}
	return nil
}

func (cmd *RenderCmd) render(g *Globals, out io.Writer) error {
	if cmd.Page {
		site := g.Config.Site
		return g.Presenter.RenderPage(out, present.Page{
			Title:        site.Title,
			Owner:        site.Owner,
			Tagline:      site.Tagline,
			ContactEmail: site.ContactEmail,
			InquiryTypes: site.InquiryTypes,
			Projects:     g.Cat.List(),
		})
	}

	html, err := g.Presenter.Render(g.Cat.List())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, html)
	return err
}

// writeAndClose runs write against wc and always closes it. A failed Close
// is reported even when the write succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	return errors.Join(err, wc.Close())
}
