package domain

// ChatMode disambiguates how free-text input from a chat is interpreted.
type ChatMode string

const (
	// ModeIdle is the default: free text is noise unless it carries a
	// recognized structure. Reads of a chat without a stored mode always
	// yield ModeIdle — callers never see "no mode".
	ModeIdle ChatMode = "idle"

	// ModeAwaitingRemoval means the chat was shown a removal keyboard and
	// the next matching free-text message names the ingredient to remove.
	ModeAwaitingRemoval ChatMode = "awaiting_removal"
)

func (m ChatMode) String() string { return string(m) }

func (m ChatMode) IsValid() bool {
	switch m {
	case ModeIdle, ModeAwaitingRemoval:
		return true
	}
	return false
}

// ChatSession is the per-chat state machine value. Choices carries the
// display-label → ingredient-code map written when entering
// ModeAwaitingRemoval, so the removal target is resolved by lookup instead
// of re-parsing formatted text.
type ChatSession struct {
	ChatID  int64
	Mode    ChatMode
	Choices map[string]string
}

// IdleSession is the session every chat starts in.
func IdleSession(chatID int64) ChatSession {
	return ChatSession{ChatID: chatID, Mode: ModeIdle}
}
