package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kaidian/internal/game"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Catalog(ctx context.Context) (*game.CatalogView, error) {
	var out game.CatalogView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/catalog", nil, &out)
	return &out, err
}

func (c *Client) NewGame(ctx context.Context, in game.CreateGameInput) (*game.GameView, error) {
	var out game.GameView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games", in, &out)
	return &out, err
}

func (c *Client) Game(ctx context.Context, id string) (*game.GameView, error) {
	var out game.GameView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id), nil, &out)
	return &out, err
}

func (c *Client) StartMonth(ctx context.Context, id string) (*game.EventView, error) {
	var out game.EventView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(id)+"/start", nil, &out)
	return &out, err
}

func (c *Client) CurrentEvent(ctx context.Context, id string) (*game.EventView, error) {
	var out game.EventView
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id)+"/event", nil, &out)
	return &out, err
}

func (c *Client) Choose(ctx context.Context, id, code string) (*game.TurnView, error) {
	var out game.TurnView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(id)+"/choose", game.ChooseInput{Code: code}, &out)
	return &out, err
}

func (c *Client) Skip(ctx context.Context, id string, months int) (*game.TurnView, error) {
	var out game.TurnView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(id)+"/skip", game.SkipInput{Months: months}, &out)
	return &out, err
}

func (c *Client) Summary(ctx context.Context, id string) (*game.TurnSummary, error) {
	var out game.TurnSummary
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id)+"/summary", nil, &out)
	return &out, err
}

func (c *Client) World(ctx context.Context, id string) ([]game.WorldEventView, error) {
	var out struct {
		Active []game.WorldEventView `json:"active"`
	}
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id)+"/world", nil, &out)
	return out.Active, err
}

func (c *Client) Achievements(ctx context.Context, id string) ([]game.AchievementView, error) {
	var out struct {
		Achievements []game.AchievementView `json:"achievements"`
	}
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games/"+url.PathEscape(id)+"/achievements", nil, &out)
	return out.Achievements, err
}

func (c *Client) Borrow(ctx context.Context, id string, in game.BorrowInput) (*game.GameView, error) {
	var out game.GameView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(id)+"/loans", in, &out)
	return &out, err
}

func (c *Client) RepayLoan(ctx context.Context, id, loanID string) (*game.GameView, error) {
	var out game.GameView
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games/"+url.PathEscape(id)+"/loans/"+url.PathEscape(loanID)+"/repay", nil, &out)
	return &out, err
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
