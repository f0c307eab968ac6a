package bot

// Outcome says what dispatch did with an update.
type Outcome string

const (
	// OutcomeHandled means a handler ran and replied (or deliberately
	// stayed silent after doing its work).
	OutcomeHandled Outcome = "handled"

	// OutcomeUnhandled means the update was recognized but no handler
	// exists for it, e.g. an unknown command.
	OutcomeUnhandled Outcome = "unhandled"

	// OutcomeIgnored means the update carried nothing for the bot: free
	// text in an idle chat, a removal reply that matches no pending choice.
	OutcomeIgnored Outcome = "ignored"
)
