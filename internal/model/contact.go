package model

// ContactRequest carries a submission from the marketing site's contact form.
// Nothing is persisted; the request is forwarded to the studio inbox by email.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Interest string `json:"interest,omitempty"`
	Message  string `json:"message"`
}
