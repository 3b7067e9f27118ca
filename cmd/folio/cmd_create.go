package main

import (
	"errors"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/ui"

	"github.com/charmbracelet/huh"
)

type CreateCmd struct{}

func validateCreateTitle(title string) error {
	var verr *catalog.ValidationError
	if errors.As(catalog.ValidateTitle(title), &verr) {
		return errors.New("Title cannot be empty")
	}
	return nil
}

func (cmd *CreateCmd) Run(g *Globals) error {
	var fields catalog.Fields

	form := ui.NewProjectForm(&fields, validateCreateTitle)

	if err := form.Run(); err != nil {
		return handleCreateFormError(err)
	}

	p, err := createProject(g, fields)
	if err != nil {
		return err
	}

	renderCreateSummary(g, p)
	return nil
}

func handleCreateFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func renderCreateSummary(g *Globals, p catalog.Project) {
	fmt.Fprint(g.Out, ui.RenderAdded(p, g.Config.Store.Backend))
}
