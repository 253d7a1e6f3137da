package domain

// MessageTemplates are the quick-reply snippets offered on the compose screen.
var MessageTemplates = []string{
	"Hello!",
	"Hi, is this a good time to talk?",
	"Thanks for reaching out.",
	"I'm running late, be there soon.",
	"Can you call me back?",
	"Please share your location.",
}
