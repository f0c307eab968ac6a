package domain

import "strings"

// UpdateType classifies a normalized inbound event.
type UpdateType string

const (
	UpdateCommand       UpdateType = "command"
	UpdateFreeText      UpdateType = "free_text"
	UpdateAddIngredient UpdateType = "add_ingredient"
	UpdateInlineQuery   UpdateType = "inline_query"
)

func (t UpdateType) IsValid() bool {
	switch t {
	case UpdateCommand, UpdateFreeText, UpdateAddIngredient, UpdateInlineQuery:
		return true
	}
	return false
}

// User identifies the sender of an update.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// FullName returns "First Last" with empty parts dropped, falling back to
// the username.
func (u User) FullName() string {
	name := strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
	if name == "" {
		return u.Username
	}
	return name
}

// Chat identifies where an update originated.
type Chat struct {
	ID      int64 `json:"id"`
	Private bool  `json:"private"`
}

// InlineQuery is an incremental-search query. Cursor is the opaque compound
// pagination cursor ("" for the first page).
type InlineQuery struct {
	QueryID string `json:"query_id"`
	Query   string `json:"query"`
	Cursor  string `json:"cursor"`
}

// Update is the normalized event envelope consumed from the queue. Exactly
// one of the payload groups below is meaningful, selected by Type.
type Update struct {
	ID        int64      `json:"id"`
	Type      UpdateType `json:"type"`
	Chat      Chat       `json:"chat"`
	From      User       `json:"from"`
	MessageID int        `json:"message_id,omitempty"`

	// UpdateCommand
	Command  string `json:"command,omitempty"`
	Argument string `json:"argument,omitempty"`

	// UpdateFreeText
	Text string `json:"text,omitempty"`

	// UpdateAddIngredient
	IngredientCode string `json:"ingredient_code,omitempty"`

	// UpdateInlineQuery
	Inline *InlineQuery `json:"inline,omitempty"`
}
