package commands

import "strings"

// Command is the action a sender requested with a message.
type Command int

const (
	// None means the text matched no known command; the message was only recorded.
	None Command = iota
	// ViewData asks for the sender's recently stored messages.
	ViewData
	// DeleteData asks for removal of everything stored for the sender.
	DeleteData
	// Help asks for the command menu.
	Help
)

const (
	viewDataPhrase   = "my data"
	deleteDataPhrase = "delete my data"
	helpPhrase       = "help"
)

// Normalize trims surrounding whitespace and lower-cases a message body.
// Messages are stored and matched in normalized form.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Classify maps a message body to a Command. Matching is exact string
// equality after Normalize; anything else is None. No fuzzy matching.
func Classify(text string) Command {
	switch Normalize(text) {
	case viewDataPhrase:
		return ViewData
	case deleteDataPhrase:
		return DeleteData
	case helpPhrase:
		return Help
	default:
		return None
	}
}

func (c Command) String() string {
	switch c {
	case ViewData:
		return "view_data"
	case DeleteData:
		return "delete_data"
	case Help:
		return "help"
	default:
		return "none"
	}
}
