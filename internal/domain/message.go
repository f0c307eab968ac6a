package domain

// SendOptions shapes an outgoing chat message beyond its text.
type SendOptions struct {
	// ChoiceKeyboard shows a one-time reply keyboard with one button per
	// entry (used for the removal prompt).
	ChoiceKeyboard []string

	// RemoveKeyboard hides a previously shown choice keyboard.
	RemoveKeyboard bool

	// TryInlineQuery attaches a "try it now" button that opens an inline
	// query pre-filled with the given text. Only shown in private chats.
	TryInlineQuery string

	// ReplyTo quotes the given message when non-zero.
	ReplyTo int

	// WebPreview enables link previews (disabled by default).
	WebPreview bool
}

// InlineResult is one entry of an inline query answer.
type InlineResult struct {
	ID          string
	Title       string
	Description string
	URL         string
	ThumbURL    string

	// MessageText is posted to the chat when the user picks this result.
	MessageText string
}
