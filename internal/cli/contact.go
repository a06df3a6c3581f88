package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runContact(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "contact email")
	company := fs.String("company", "", "company name")
	message := fs.String("message", "", "message body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *first == "" || *email == "" || *message == "" {
		return fmt.Errorf("contact: -first, -email and -message are required")
	}

	err := a.Client.Contact.Send(ctx, luminahr.ContactForm{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Company:   *company,
		Message:   *message,
	})
	if err != nil {
		return err
	}
	a.successf("Message sent, we will get back to you")
	return nil
}
