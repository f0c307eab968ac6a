// Package addb is the client for the Absolut Drinks catalog API. Every
// request carries the API key as a query parameter; responses use a
// {result, totalResult} envelope.
//
// Outcomes map onto domain sentinels: a 404 is domain.ErrNotFound, any
// other 4xx is domain.ErrRejected, and 5xx or transport failures are
// domain.ErrUnavailable so the queue knows the call is worth retrying.
package addb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/boozybot/boozy-backend/internal/config"
	"github.com/boozybot/boozy-backend/internal/domain"
)

// Client talks to the drink catalog API.
type Client struct {
	http *resty.Client
}

// New creates a catalog client from config.
func New(cfg config.CatalogConfig) *Client {
	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetQueryParam("apiKey", cfg.Key)

	return &Client{http: http}
}

// catalogIngredient is the catalog's wire shape for an ingredient.
type catalogIngredient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (ci catalogIngredient) toDomain() domain.CatalogIngredient {
	return domain.CatalogIngredient{
		ID:          ci.ID,
		Name:        ci.Name,
		Category:    domain.Category(ci.Type),
		Description: ci.Description,
	}
}

type ingredientEnvelope struct {
	Result      []catalogIngredient `json:"result"`
	TotalResult int                 `json:"totalResult"`
}

type drinkEnvelope struct {
	Result      []domain.Drink `json:"result"`
	TotalResult int            `json:"totalResult"`
}

// GetIngredient fetches one ingredient by its catalog code.
func (c *Client) GetIngredient(ctx context.Context, code string) (domain.CatalogIngredient, error) {
	var ing catalogIngredient

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ing).
		Get("/ingredients/" + url.PathEscape(code))
	if err := mapResponse(resp, err, "ingredient "+code); err != nil {
		return domain.CatalogIngredient{}, err
	}

	return ing.toDomain(), nil
}

// SearchIngredients runs an incremental ingredient name search and returns
// one page plus the total number of hits.
func (c *Client) SearchIngredients(ctx context.Context, query string, offset, pageSize int) ([]domain.CatalogIngredient, int, error) {
	var envelope ingredientEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("start", strconv.Itoa(offset)).
		SetQueryParam("pageSize", strconv.Itoa(pageSize)).
		SetResult(&envelope).
		Get("/quickSearch/ingredients/" + url.PathEscape(query))
	if err := mapResponse(resp, err, "ingredient search "+query); err != nil {
		return nil, 0, err
	}

	ingredients := make([]domain.CatalogIngredient, 0, len(envelope.Result))
	for _, ci := range envelope.Result {
		ingredients = append(ingredients, ci.toDomain())
	}

	return ingredients, envelope.TotalResult, nil
}

// SearchDrinks runs an incremental drink name search and returns one page
// plus the total number of hits.
func (c *Client) SearchDrinks(ctx context.Context, query string, offset, pageSize int) ([]domain.Drink, int, error) {
	var envelope drinkEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("start", strconv.Itoa(offset)).
		SetQueryParam("pageSize", strconv.Itoa(pageSize)).
		SetResult(&envelope).
		Get("/quickSearch/drinks/" + url.PathEscape(query))
	if err := mapResponse(resp, err, "drink search "+query); err != nil {
		return nil, 0, err
	}

	return envelope.Result, envelope.TotalResult, nil
}

// DrinksWithIngredients returns every drink that uses at least one of the
// given ingredient codes. The catalog expresses the disjunction in the
// path: /drinks/with/gin/or/lime-juice/.
func (c *Client) DrinksWithIngredients(ctx context.Context, codes []string) ([]domain.Drink, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("drinks with ingredients: %w: no codes given", domain.ErrValidation)
	}

	escaped := make([]string, 0, len(codes))
	for _, code := range codes {
		escaped = append(escaped, url.PathEscape(code))
	}

	var envelope drinkEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get("/drinks/with/" + strings.Join(escaped, "/or/") + "/")
	if err := mapResponse(resp, err, "drinks with ingredients"); err != nil {
		return nil, err
	}

	return envelope.Result, nil
}

// mapResponse folds the transport error and HTTP status into one domain
// error, or nil for a 2xx response.
func mapResponse(resp *resty.Response, err error, subject string) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %v", subject, domain.ErrUnavailable, err)
	}

	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%s: catalog returned %d: %w", subject, code, domain.ErrRejected)
	default:
		return fmt.Errorf("%s: catalog returned %d: %w", subject, code, domain.ErrUnavailable)
	}
}
