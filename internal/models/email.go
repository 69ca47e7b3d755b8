package models

// EmailMessage is one transactional email sent by the console.
type EmailMessage struct {
	To          string
	Subject     string
	Content     string
	HTMLContent string
}
