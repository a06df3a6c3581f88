package luminahr

import (
	"context"
	"net/http"
)

type ContactForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Message   string `json:"message"`
}

// ContactService handles the public contact form.
type ContactService struct {
	client *Client
}

// Send submits the contact form. Public, no auth required.
func (s *ContactService) Send(ctx context.Context, form ContactForm) error {
	return s.client.do(ctx, http.MethodPost, "/contact", nil, form, nil)
}
