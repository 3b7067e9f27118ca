package main

import (
	"fmt"
	"text/tabwriter"
	"time"
)

type MessagesCmd struct{}

func (cmd *MessagesCmd) Run(g *Globals) error {
	messages, err := g.Store.Messages()
	if err != nil {
		return fmt.Errorf("failed to read contact messages: %w", err)
	}

	if len(messages) == 0 {
		fmt.Fprintln(g.Out, "No messages.")
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tFROM\tTYPE\tSUBJECT")
	fmt.Fprintln(w, "--------\t----\t----\t-------")
	for _, m := range messages {
		fmt.Fprintf(w, "%s\t%s <%s>\t%s\t%s\n",
			m.Timestamp.Format(time.DateTime), m.Name, m.Email, m.Type, m.Subject)
	}
	return w.Flush()
}
