package bot

import (
	"context"
	"log/slog"

	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockIngredientRepo struct {
	ListByChatFunc func(ctx context.Context, chatID int64) ([]domain.Ingredient, error)
	ExistsFunc     func(ctx context.Context, chatID int64, code string) (bool, error)
	CountFunc      func(ctx context.Context, chatID int64) (int, error)
	CreateFunc     func(ctx context.Context, ing domain.Ingredient) (domain.Ingredient, error)
	DeleteFunc     func(ctx context.Context, chatID int64, code string) error
	DeleteAllFunc  func(ctx context.Context, chatID int64) (int, error)
}

func (m *mockIngredientRepo) ListByChat(ctx context.Context, chatID int64) ([]domain.Ingredient, error) {
	if m.ListByChatFunc != nil {
		return m.ListByChatFunc(ctx, chatID)
	}
	return nil, nil
}

func (m *mockIngredientRepo) Exists(ctx context.Context, chatID int64, code string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, chatID, code)
	}
	return false, nil
}

func (m *mockIngredientRepo) Count(ctx context.Context, chatID int64) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, chatID)
	}
	return 0, nil
}

func (m *mockIngredientRepo) Create(ctx context.Context, ing domain.Ingredient) (domain.Ingredient, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ing)
	}
	return ing, nil
}

func (m *mockIngredientRepo) Delete(ctx context.Context, chatID int64, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, chatID, code)
	}
	return nil
}

func (m *mockIngredientRepo) DeleteAll(ctx context.Context, chatID int64) (int, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, chatID)
	}
	return 0, nil
}

type mockModeRepo struct {
	GetFunc   func(ctx context.Context, chatID int64) (domain.ChatSession, error)
	SetFunc   func(ctx context.Context, session domain.ChatSession) error
	ResetFunc func(ctx context.Context, chatID int64) error

	resets []int64
}

func (m *mockModeRepo) Get(ctx context.Context, chatID int64) (domain.ChatSession, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, chatID)
	}
	return domain.IdleSession(chatID), nil
}

func (m *mockModeRepo) Set(ctx context.Context, session domain.ChatSession) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, session)
	}
	return nil
}

func (m *mockModeRepo) Reset(ctx context.Context, chatID int64) error {
	m.resets = append(m.resets, chatID)
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, chatID)
	}
	return nil
}

type mockCacheRepo struct {
	InsertRankedFunc func(ctx context.Context, chatID int64, drinks []domain.Drink) error
	TakePageFunc     func(ctx context.Context, chatID int64, pageSize int) ([]domain.Drink, error)
	DropFunc         func(ctx context.Context, chatID int64) error

	inserted [][]domain.Drink
	drops    []int64
}

func (m *mockCacheRepo) InsertRanked(ctx context.Context, chatID int64, drinks []domain.Drink) error {
	m.inserted = append(m.inserted, drinks)
	if m.InsertRankedFunc != nil {
		return m.InsertRankedFunc(ctx, chatID, drinks)
	}
	return nil
}

func (m *mockCacheRepo) TakePage(ctx context.Context, chatID int64, pageSize int) ([]domain.Drink, error) {
	if m.TakePageFunc != nil {
		return m.TakePageFunc(ctx, chatID, pageSize)
	}
	return nil, nil
}

func (m *mockCacheRepo) Drop(ctx context.Context, chatID int64) error {
	m.drops = append(m.drops, chatID)
	if m.DropFunc != nil {
		return m.DropFunc(ctx, chatID)
	}
	return nil
}

type mockAuditRepo struct {
	RecordFunc func(ctx context.Context, rec domain.AuditRecord) (bool, error)

	records []domain.AuditRecord
}

func (m *mockAuditRepo) Record(ctx context.Context, rec domain.AuditRecord) (bool, error) {
	m.records = append(m.records, rec)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, rec)
	}
	return true, nil
}

type mockCatalog struct {
	GetIngredientFunc         func(ctx context.Context, code string) (domain.CatalogIngredient, error)
	SearchIngredientsFunc     func(ctx context.Context, query string, offset, pageSize int) ([]domain.CatalogIngredient, int, error)
	SearchDrinksFunc          func(ctx context.Context, query string, offset, pageSize int) ([]domain.Drink, int, error)
	DrinksWithIngredientsFunc func(ctx context.Context, codes []string) ([]domain.Drink, error)
}

func (m *mockCatalog) GetIngredient(ctx context.Context, code string) (domain.CatalogIngredient, error) {
	if m.GetIngredientFunc != nil {
		return m.GetIngredientFunc(ctx, code)
	}
	return domain.CatalogIngredient{}, domain.ErrNotFound
}

func (m *mockCatalog) SearchIngredients(ctx context.Context, query string, offset, pageSize int) ([]domain.CatalogIngredient, int, error) {
	if m.SearchIngredientsFunc != nil {
		return m.SearchIngredientsFunc(ctx, query, offset, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCatalog) SearchDrinks(ctx context.Context, query string, offset, pageSize int) ([]domain.Drink, int, error) {
	if m.SearchDrinksFunc != nil {
		return m.SearchDrinksFunc(ctx, query, offset, pageSize)
	}
	return nil, 0, nil
}

func (m *mockCatalog) DrinksWithIngredients(ctx context.Context, codes []string) ([]domain.Drink, error) {
	if m.DrinksWithIngredientsFunc != nil {
		return m.DrinksWithIngredientsFunc(ctx, codes)
	}
	return nil, nil
}

type sentMessage struct {
	chatID int64
	text   string
	opts   domain.SendOptions
}

type inlineAnswer struct {
	queryID    string
	results    []domain.InlineResult
	nextCursor string
	helpText   string
}

type mockTransport struct {
	SendFunc func(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error

	sent    []sentMessage
	answers []inlineAnswer
}

func (m *mockTransport) Send(ctx context.Context, chatID int64, text string, opts domain.SendOptions) error {
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, opts: opts})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, chatID, text, opts)
	}
	return nil
}

func (m *mockTransport) AnswerInline(ctx context.Context, queryID string, results []domain.InlineResult, nextCursor string) error {
	m.answers = append(m.answers, inlineAnswer{queryID: queryID, results: results, nextCursor: nextCursor})
	return nil
}

func (m *mockTransport) AnswerInlineHelp(ctx context.Context, queryID, text string) error {
	m.answers = append(m.answers, inlineAnswer{queryID: queryID, helpText: text})
	return nil
}

func (m *mockTransport) BotName() string { return "boozybot" }

type mockTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

// ===========================================================================
// Test helpers
// ===========================================================================

type testDeps struct {
	ingredients *mockIngredientRepo
	modes       *mockModeRepo
	cache       *mockCacheRepo
	audit       *mockAuditRepo
	catalog     *mockCatalog
	telegram    *mockTransport
	tx          *mockTxManager
}

func defaultCfg() config.BotConfig {
	return config.BotConfig{
		MaxIngredients: 10,
		PageSize:       2,
		InlinePageSize: 10,
		Tolerance:      1,
	}
}

func newTestService(cfg config.BotConfig) (*Service, *testDeps) {
	deps := &testDeps{
		ingredients: &mockIngredientRepo{},
		modes:       &mockModeRepo{},
		cache:       &mockCacheRepo{},
		audit:       &mockAuditRepo{},
		catalog:     &mockCatalog{},
		telegram:    &mockTransport{},
		tx:          &mockTxManager{},
	}
	svc := NewService(
		slog.Default(),
		deps.ingredients,
		deps.modes,
		deps.cache,
		deps.audit,
		deps.catalog,
		deps.telegram,
		deps.tx,
		cfg,
	)
	return svc, deps
}

func commandUpdate(command, argument string) domain.Update {
	return domain.Update{
		ID:        10001,
		Type:      domain.UpdateCommand,
		Chat:      domain.Chat{ID: 42, Private: true},
		From:      domain.User{ID: 7, Username: "alex", FirstName: "Alex"},
		MessageID: 5,
		Command:   command,
		Argument:  argument,
	}
}

func freeTextUpdate(text string) domain.Update {
	return domain.Update{
		ID:   10002,
		Type: domain.UpdateFreeText,
		Chat: domain.Chat{ID: 42, Private: true},
		From: domain.User{ID: 7, Username: "alex"},
		Text: text,
	}
}

func addUpdate(code string) domain.Update {
	return domain.Update{
		ID:             10003,
		Type:           domain.UpdateAddIngredient,
		Chat:           domain.Chat{ID: 42, Private: true},
		From:           domain.User{ID: 7, Username: "alex", FirstName: "Alex", LastName: "Doe"},
		IngredientCode: code,
	}
}

func inlineUpdate(query, cursor string) domain.Update {
	return domain.Update{
		ID:   10004,
		Type: domain.UpdateInlineQuery,
		From: domain.User{ID: 7, Username: "alex"},
		Inline: &domain.InlineQuery{
			QueryID: "q-1",
			Query:   query,
			Cursor:  cursor,
		},
	}
}

func chatIngredient(code, name string, category domain.Category) domain.Ingredient {
	return domain.Ingredient{
		ChatID:    42,
		Code:      code,
		Name:      name,
		Category:  category,
		AddedBy:   7,
		AddedName: "Alex",
	}
}
