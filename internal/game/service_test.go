package game

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

// memStore keeps JSON snapshots in a map, round-tripping through the same
// encoding the real store uses.
type memStore struct {
	mu    sync.Mutex
	saves map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{saves: make(map[string][]byte)}
}

func (m *memStore) SaveGame(_ context.Context, s *State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[s.ID] = b
	return nil
}

func (m *memStore) LoadGame(_ context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.saves[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	st := newMemStore()
	return NewService(st, nil, nil), st
}

func createTestGame(t *testing.T, svc *Service) *GameView {
	t.Helper()
	v, err := svc.CreateGame(context.Background(), CreateGameInput{
		PlayerName: "Wei",
		TraitID:    "ISTJ",
		ShopTypeID: "noodle_bar",
		LocationID: "campus",
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return v
}

func TestServiceCreateAndGet(t *testing.T) {
	svc, store := newTestService(t)
	v := createTestGame(t, svc)

	if v.Player.Cash != InitialCash+8000 { // ISTJ trait bonus
		t.Fatalf("cash: got %d", v.Player.Cash)
	}
	if _, ok := store.saves[v.ID]; !ok {
		t.Fatalf("create must persist")
	}

	got, err := svc.GetGame(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != v.ID || got.Month != 1 {
		t.Fatalf("got %+v", got)
	}

	if _, err := svc.GetGame(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestServiceRejectsBadName(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateGame(context.Background(), CreateGameInput{
		PlayerName: "tabs\tand\nnewlines",
		TraitID:    "ISTJ",
		ShopTypeID: "noodle_bar",
		LocationID: "campus",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestServiceMonthRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	v := createTestGame(t, svc)
	ctx := context.Background()

	ev, err := svc.StartMonth(ctx, v.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if ev.EventID == "" || len(ev.Choices) == 0 {
		t.Fatalf("event view incomplete: %+v", ev)
	}

	// starting again while a choice is pending is refused
	if _, err := svc.StartMonth(ctx, v.ID); !errors.Is(err, ErrPendingChoice) {
		t.Fatalf("want ErrPendingChoice, got %v", err)
	}

	cur, err := svc.CurrentEvent(ctx, v.ID)
	if err != nil || cur.EventID != ev.EventID {
		t.Fatalf("current event: %v %+v", err, cur)
	}

	turn, err := svc.Choose(ctx, v.ID, ChooseInput{Code: ev.Choices[0].Code})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if turn.Summary == nil || turn.Game.Month != 2 {
		t.Fatalf("turn view: %+v", turn)
	}

	sum, err := svc.LastSummary(ctx, v.ID)
	if err != nil || sum.Month != 1 {
		t.Fatalf("last summary: %v %+v", err, sum)
	}
}

// A service restarted over the same store must continue the exact same
// run: same pending event, same state, and a working RNG stream.
func TestServiceRestoreContinuesRun(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	svcA := NewService(store, nil, nil)
	v, err := svcA.CreateGame(ctx, CreateGameInput{
		PlayerName: "Wei", TraitID: "ISTJ", ShopTypeID: "noodle_bar", LocationID: "campus", Seed: 42,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	evA, err := svcA.StartMonth(ctx, v.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	svcB := NewService(store, nil, nil)
	evB, err := svcB.CurrentEvent(ctx, v.ID)
	if err != nil {
		t.Fatalf("restored current event: %v", err)
	}
	if evB.EventID != evA.EventID {
		t.Fatalf("restored service diverged: %s vs %s", evB.EventID, evA.EventID)
	}

	turn, err := svcB.Choose(ctx, v.ID, ChooseInput{Code: evB.Choices[0].Code})
	if err != nil {
		t.Fatalf("choose after restore: %v", err)
	}
	if turn.Game.Month != 2 {
		t.Fatalf("restored run should advance normally: month %d", turn.Game.Month)
	}
}

func TestServiceBorrowAndRepay(t *testing.T) {
	svc, _ := newTestService(t)
	v := createTestGame(t, svc)
	ctx := context.Background()

	got, err := svc.Borrow(ctx, v.ID, BorrowInput{Principal: 20_000, AnnualRate: 0.12, TermMonths: 12})
	if err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if got.Debt != 20_000 {
		t.Fatalf("debt: got %d", got.Debt)
	}
	if got.Player.Cash != v.Player.Cash+20_000 {
		t.Fatalf("principal not credited: %d", got.Player.Cash)
	}

	loanID := got.Loans[0].ID
	got, err = svc.RepayLoan(ctx, v.ID, loanID)
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if got.Debt != 0 || len(got.Loans) != 0 {
		t.Fatalf("loan should clear: %+v", got)
	}
	if got.Player.Cash != v.Player.Cash {
		t.Fatalf("repaying immediately should be cash neutral: %d", got.Player.Cash)
	}

	if _, err := svc.RepayLoan(ctx, v.ID, loanID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("repaying a gone loan: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Borrow(ctx, v.ID, BorrowInput{Principal: -1, AnnualRate: 0.1, TermMonths: 12}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestServiceSkip(t *testing.T) {
	svc, _ := newTestService(t)
	v := createTestGame(t, svc)
	ctx := context.Background()

	turn, err := svc.Skip(ctx, v.ID, SkipInput{Months: 2})
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if turn.Game.Month != 3 {
		t.Fatalf("month after double skip: got %d", turn.Game.Month)
	}
	if turn.Game.SkipTickets != 0 {
		t.Fatalf("tickets: got %d", turn.Game.SkipTickets)
	}
	if _, err := svc.Skip(ctx, v.ID, SkipInput{Months: 1}); !errors.Is(err, ErrNoSkipTickets) {
		t.Fatalf("want ErrNoSkipTickets, got %v", err)
	}
}
