package main

import (
	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/present"
	"folio/internal/store"
	"io"

	"go.uber.org/zap"
)

type Globals struct {
	Cat       *catalog.Catalog
	Store     *store.Store
	Config    *config.Config
	Logger    *zap.Logger
	Presenter *present.Presenter
	Out       io.Writer
	Err       io.Writer
	Render    render.Renderer
}

// ContactService builds the contact pipeline from config. Without SMTP
// settings every message falls back to a mailto link.
func (g *Globals) ContactService() *contact.Service {
	var relay contact.Relay
	if g.Config.SMTPEnabled() {
		smtp, err := contact.NewSMTPRelay(contact.SMTPConfig{
			Host:     g.Config.SMTP.Host,
			Port:     g.Config.SMTP.Port,
			Username: g.Config.SMTP.Username,
			Password: g.Config.SMTP.Password,
			From:     g.Config.SMTP.From,
			To:       g.Config.SMTP.To,
			Timeout:  g.Config.SMTP.Timeout,
		})
		if err != nil {
			g.Logger.Warn("smtp relay disabled", zap.Error(err))
		} else {
			relay = smtp
		}
	}
	return contact.NewService(g.Store, relay, g.Config.Site.ContactEmail, g.Logger)
}
