package model

// EmailMessage is a rendered report ready to be delivered
type EmailMessage struct {
	Subject string
	Body    string
	Format  Format
	From    string
	To      []string
}
