package main

import (
	"context"
	"fmt"
	"folio/internal/contact"
)

type ContactCmd struct {
	Name       string `required:"" help:"Sender name"`
	Email      string `required:"" help:"Sender email"`
	Subject    string `required:"" help:"Message subject"`
	Message    string `arg:"" help:"Message body"`
	Type       string `default:"general" help:"Inquiry type"`
	Newsletter bool   `help:"Subscribe the sender to the newsletter"`
}

func (cmd *ContactCmd) Run(g *Globals) error {
	return cmd.submit(context.Background(), g, g.ContactService())
}

func (cmd *ContactCmd) submit(ctx context.Context, g *Globals, svc *contact.Service) error {
	out, err := svc.Submit(ctx, contact.Submission{
		Name:       cmd.Name,
		Email:      cmd.Email,
		Subject:    cmd.Subject,
		Message:    cmd.Message,
		Type:       cmd.Type,
		Newsletter: cmd.Newsletter,
	})
	if err != nil {
		return err
	}

	if out.ArchiveErr != nil {
		fmt.Fprintf(g.Err, "warning: message not archived: %v\n", out.ArchiveErr)
	}
	if out.Delivered {
		fmt.Fprintln(g.Out, "Message sent.")
		return nil
	}
	fmt.Fprintln(g.Out, "Message not sent directly. Open this link in your mail client:")
	fmt.Fprintln(g.Out, out.MailtoURL)
	return nil
}
