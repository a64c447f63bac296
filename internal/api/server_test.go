package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kaidian/internal/auth"
	"kaidian/internal/config"
	"kaidian/internal/game"
)

type memStore struct {
	games map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{games: make(map[string][]byte)}
}

func (m *memStore) SaveGame(_ context.Context, s *game.State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.games[s.ID] = raw
	return nil
}

func (m *memStore) LoadGame(_ context.Context, id string) (*game.State, error) {
	raw, ok := m.games[id]
	if !ok {
		return nil, game.ErrStoreNotFound
	}
	var st game.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func newTestServer(t *testing.T, tokens []string) *httptest.Server {
	t.Helper()
	svc := game.NewService(newMemStore(), nil, nil)
	srv := New(config.APIConfig{}, nil, auth.NewVerifier(tokens), svc)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var fields map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp, fields
}

func createGame(t *testing.T, base string) string {
	t.Helper()
	resp, fields := doJSON(t, http.MethodPost, base+"/v1/games", game.CreateGameInput{
		PlayerName: "Wei",
		TraitID:    "ISTJ",
		ShopTypeID: "noodle_bar",
		LocationID: "campus",
		Seed:       42,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create game status = %d", resp.StatusCode)
	}
	var id string
	if err := json.Unmarshal(fields["id"], &id); err != nil {
		t.Fatalf("decode id: %v", err)
	}
	if id == "" {
		t.Fatal("empty game id")
	}
	return id
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if string(fields["ok"]) != "true" {
		t.Fatalf("ok = %s", fields["ok"])
	}
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/v1/catalog", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, key := range []string{"traits", "shop_types", "locations"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("catalog missing %q", key)
		}
	}
}

func TestCreateAndGetGame(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createGame(t, ts.URL)

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/v1/games/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var month int
	if err := json.Unmarshal(fields["month"], &month); err != nil {
		t.Fatalf("decode month: %v", err)
	}
	if month != 1 {
		t.Fatalf("month = %d, want 1", month)
	}
}

func TestCreateGameRejectsUnknownFields(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/v1/games", map[string]any{
		"player_name": "Wei",
		"trait_id":    "ISTJ",
		"bogus":       true,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetUnknownGame(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/v1/games/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestMonthLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createGame(t, ts.URL)

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/start", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start status = %d", resp.StatusCode)
	}
	var choices []struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(fields["choices"], &choices); err != nil {
		t.Fatalf("decode choices: %v", err)
	}
	if len(choices) == 0 {
		t.Fatal("no choices presented")
	}

	// a second start while a choice is pending conflicts
	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/start", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("restart status = %d, want 409", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/v1/games/"+id+"/event", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("event status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/choose", game.ChooseInput{Code: "ZZ"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad choose status = %d, want 400", resp.StatusCode)
	}

	resp, fields = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/choose", game.ChooseInput{Code: choices[0].Code})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("choose status = %d", resp.StatusCode)
	}
	var gv struct {
		Month int `json:"month"`
	}
	if err := json.Unmarshal(fields["game"], &gv); err != nil {
		t.Fatalf("decode game view: %v", err)
	}
	if gv.Month != 2 {
		t.Fatalf("month after choose = %d, want 2", gv.Month)
	}

	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/v1/games/"+id+"/summary", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary status = %d", resp.StatusCode)
	}
	var sumMonth int
	if err := json.Unmarshal(fields["month"], &sumMonth); err != nil {
		t.Fatalf("decode summary month: %v", err)
	}
	if sumMonth != 1 {
		t.Fatalf("summary month = %d, want 1", sumMonth)
	}
}

func TestChooseWithoutPendingConflicts(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createGame(t, ts.URL)
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/choose", game.ChooseInput{Code: "A"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}

func TestLoanEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createGame(t, ts.URL)

	resp, fields := doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/loans", game.BorrowInput{
		Principal:  20000,
		AnnualRate: 0.12,
		TermMonths: 12,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("borrow status = %d", resp.StatusCode)
	}
	var loans []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(fields["loans"], &loans); err != nil {
		t.Fatalf("decode loans: %v", err)
	}
	if len(loans) != 1 {
		t.Fatalf("loans = %d, want 1", len(loans))
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/loans/"+loans[0].ID+"/repay", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repay status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/loans/"+loans[0].ID+"/repay", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("double repay status = %d, want 404", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games/"+id+"/loans", game.BorrowInput{Principal: -5})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad borrow status = %d, want 400", resp.StatusCode)
	}
}

func TestWorldAndAchievements(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createGame(t, ts.URL)

	resp, fields := doJSON(t, http.MethodGet, ts.URL+"/v1/games/"+id+"/world", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("world status = %d", resp.StatusCode)
	}
	if _, ok := fields["active"]; !ok {
		t.Fatal("world response missing active")
	}

	resp, fields = doJSON(t, http.MethodGet, ts.URL+"/v1/games/"+id+"/achievements", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("achievements status = %d", resp.StatusCode)
	}
	if _, ok := fields["achievements"]; !ok {
		t.Fatal("achievements response missing list")
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t, []string{"sekrit"})

	// catalog stays open
	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/v1/catalog", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("catalog status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/v1/games", game.CreateGameInput{PlayerName: "Wei"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unauthenticated status = %d, want 403", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/games/nope", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer sekrit")
	authed, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	authed.Body.Close()
	if authed.StatusCode != http.StatusNotFound {
		t.Fatalf("authed status = %d, want 404", authed.StatusCode)
	}
}
