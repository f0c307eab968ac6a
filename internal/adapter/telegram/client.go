// Package telegram wraps the Bot API behind domain types. The listener
// pulls normalized updates from it, the worker sends replies and inline
// answers through it; nothing outside this package touches tgbotapi types.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Client talks to the Telegram Bot API.
type Client struct {
	api *tgbotapi.BotAPI
	cfg config.TelegramConfig
	log *slog.Logger
}

// New authorizes against the Bot API and returns a client.
func New(cfg config.TelegramConfig, log *slog.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}

	log.Info("authorized on telegram", "account", api.Self.UserName)

	return &Client{
		api: api,
		cfg: cfg,
		log: log.With("adapter", "telegram"),
	}, nil
}

// BotName returns the authorized bot username.
func (c *Client) BotName() string {
	return c.api.Self.UserName
}

// Send delivers one Markdown message to a chat. Link previews are off
// unless opts.WebPreview asks for them.
func (c *Client) Send(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = !opts.WebPreview
	if opts.ReplyTo != 0 {
		msg.ReplyToMessageID = opts.ReplyTo
	}

	switch {
	case len(opts.ChoiceKeyboard) > 0:
		rows := make([][]tgbotapi.KeyboardButton, 0, len(opts.ChoiceKeyboard))
		for _, label := range opts.ChoiceKeyboard {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
		}
		keyboard := tgbotapi.NewOneTimeReplyKeyboard(rows...)
		keyboard.ResizeKeyboard = true
		keyboard.Selective = true
		msg.ReplyMarkup = keyboard

	case opts.RemoveKeyboard:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)

	case opts.TryInlineQuery != "":
		query := opts.TryInlineQuery
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.InlineKeyboardButton{
				Text:              "💡 Try it now: " + query,
				SwitchInlineQuery: &query,
			}),
		)
	}

	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}

	return nil
}

// AnswerInline answers an inline query with article results. nextCursor is
// passed through as the next_offset the client echoes back on the
// following page request; "" means no further pages.
func (c *Client) AnswerInline(ctx context.Context, queryID string, results []domain.InlineResult, nextCursor string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	articles := make([]interface{}, 0, len(results))
	for _, res := range results {
		article := tgbotapi.NewInlineQueryResultArticleMarkdown(res.ID, res.Title, res.MessageText)
		article.Description = res.Description
		article.URL = res.URL
		article.ThumbURL = res.ThumbURL
		article.ThumbWidth = 200
		article.ThumbHeight = 200
		articles = append(articles, article)
	}

	answer := tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		Results:       articles,
		NextOffset:    nextCursor,
	}

	if _, err := c.api.Request(answer); err != nil {
		return fmt.Errorf("answer inline query %s: %w", queryID, err)
	}

	return nil
}

// AnswerInlineHelp answers an empty inline query with a single
// switch-to-PM help button instead of results.
func (c *Client) AnswerInlineHelp(ctx context.Context, queryID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	answer := tgbotapi.InlineConfig{
		InlineQueryID:     queryID,
		Results:           []interface{}{},
		SwitchPMText:      text,
		SwitchPMParameter: "hint",
	}

	if _, err := c.api.Request(answer); err != nil {
		return fmt.Errorf("answer inline query %s with help: %w", queryID, err)
	}

	return nil
}
