package telegram

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// Updates long-polls the Bot API from the given offset and returns the
// normalized batch plus the offset to poll from next. The offset always
// moves through the return value; this client keeps no cursor of its own,
// so a restarted caller decides where to resume.
func (c *Client) Updates(ctx context.Context, offset int) ([]domain.Update, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, offset, err
	}

	raw, err := c.api.GetUpdates(tgbotapi.UpdateConfig{
		Offset:  offset,
		Limit:   c.cfg.PollLimit,
		Timeout: int(c.cfg.PollTimeout.Seconds()),
	})
	if err != nil {
		return nil, offset, fmt.Errorf("get updates from offset %d: %w", offset, err)
	}

	next := offset
	updates := make([]domain.Update, 0, len(raw))
	for _, u := range raw {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}

		upd, ok := normalize(u)
		if !ok {
			c.log.Debug("skipping unrecognized update", "update_id", u.UpdateID)
			continue
		}
		updates = append(updates, upd)
	}

	return updates, next, nil
}

// normalize maps one raw Bot API update onto the domain envelope. Returns
// false for update kinds the bot does not handle.
func normalize(u tgbotapi.Update) (domain.Update, bool) {
	if u.InlineQuery != nil {
		q := u.InlineQuery
		return domain.Update{
			ID:   int64(u.UpdateID),
			Type: domain.UpdateInlineQuery,
			From: normalizeUser(q.From),
			Inline: &domain.InlineQuery{
				QueryID: q.ID,
				Query:   strings.TrimSpace(q.Query),
				Cursor:  q.Offset,
			},
		}, true
	}

	msg := u.Message
	if msg == nil || msg.Text == "" {
		return domain.Update{}, false
	}

	upd := domain.Update{
		ID:        int64(u.UpdateID),
		MessageID: msg.MessageID,
		Chat: domain.Chat{
			ID:      msg.Chat.ID,
			Private: msg.Chat.IsPrivate(),
		},
		From: normalizeUser(msg.From),
	}

	if msg.IsCommand() {
		command := msg.Command()
		argument := strings.TrimSpace(msg.CommandArguments())

		if command == "add" {
			code := parseAddCode(msg, argument)
			if code == "" {
				return domain.Update{}, false
			}
			upd.Type = domain.UpdateAddIngredient
			upd.IngredientCode = code
			return upd, true
		}

		upd.Type = domain.UpdateCommand
		upd.Command = command
		upd.Argument = argument
		return upd, true
	}

	upd.Type = domain.UpdateFreeText
	upd.Text = msg.Text
	return upd, true
}

// parseAddCode extracts the ingredient code from a chosen-ingredient
// message. Inline answers post "/add *code*", so the code arrives as the
// bold entity; a hand-typed "/add code" falls back to the first argument
// token.
func parseAddCode(msg *tgbotapi.Message, argument string) string {
	for _, e := range msg.Entities {
		if e.Type == "bold" {
			return strings.TrimSpace(entityText(msg.Text, e))
		}
	}

	token, _, _ := strings.Cut(argument, " ")
	return strings.Trim(token, "*.")
}

// entityText slices an entity out of the message text. Entity offsets are
// UTF-16 code units, not bytes.
func entityText(text string, e tgbotapi.MessageEntity) string {
	enc := utf16.Encode([]rune(text))
	if e.Offset < 0 || e.Length < 0 || e.Offset+e.Length > len(enc) {
		return ""
	}
	return string(utf16.Decode(enc[e.Offset : e.Offset+e.Length]))
}

func normalizeUser(from *tgbotapi.User) domain.User {
	if from == nil {
		return domain.User{}
	}
	return domain.User{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	}
}
