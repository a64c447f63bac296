package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"kaidian/internal/data"
)

var playerNameRE = regexp.MustCompile(`^[\p{L}\p{N} _-]{1,32}$`)

// Store persists full game states keyed by game id.
type Store interface {
	SaveGame(ctx context.Context, s *State) error
	LoadGame(ctx context.Context, id string) (*State, error)
}

// ErrStoreNotFound is what a Store returns for an unknown id; the service
// maps it to ErrNotFound.
var ErrStoreNotFound = errors.New("saved game not found")

// Service owns every live session. One mutex guards the session map and
// the sessions themselves: a game is strictly turn-ordered, so command
// concurrency buys nothing and would complicate the RNG stream.
type Service struct {
	store Store
	data  *data.GameData
	log   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	st  *State
	rng *LCG
}

func NewService(store Store, d *data.GameData, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if d == nil {
		d = data.Default()
	}
	return &Service{
		store:    store,
		data:     d,
		log:      logger,
		sessions: make(map[string]*session),
	}
}

func (s *Service) Data() *data.GameData { return s.data }

type CreateGameInput struct {
	PlayerName string `json:"player_name"`
	TraitID    string `json:"trait_id"`
	ShopTypeID string `json:"shop_type_id"`
	LocationID string `json:"location_id"`
	Seed       int64  `json:"seed,omitempty"`
}

func (s *Service) CreateGame(ctx context.Context, in CreateGameInput) (*GameView, error) {
	if !playerNameRE.MatchString(in.PlayerName) {
		return nil, fmt.Errorf("%w: bad player name", ErrInvalidInput)
	}
	st, err := NewState(NewStateInput{
		PlayerName: in.PlayerName,
		TraitID:    in.TraitID,
		ShopTypeID: in.ShopTypeID,
		LocationID: in.LocationID,
		Seed:       in.Seed,
	}, s.data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{st: st, rng: NewLCG(int64(st.Seed))}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.sessions[st.ID] = sess
	s.log.Info("game created", "game_id", st.ID, "trait", st.Player.TraitID, "shop_type", in.ShopTypeID)
	return newGameView(st, s.data), nil
}

func (s *Service) GetGame(ctx context.Context, id string) (*GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return newGameView(sess.st, s.data), nil
}

// StartMonth selects and presents the month's event.
func (s *Service) StartMonth(ctx context.Context, id string) (*EventView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	def, err := StartMonth(sess.st, s.data, sess.rng)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("month started", "game_id", id, "month", sess.st.Month, "event", def.ID)
	return newEventView(sess.st, s.data, def), nil
}

// CurrentEvent returns the pending event and its visible choices.
func (s *Service) CurrentEvent(ctx context.Context, id string) (*EventView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	def, err := PendingEvent(sess.st, s.data)
	if err != nil {
		return nil, err
	}
	return newEventView(sess.st, s.data, def), nil
}

type ChooseInput struct {
	Code string `json:"code"`
}

// Choose resolves the pending choice and closes the month.
func (s *Service) Choose(ctx context.Context, id string, in ChooseInput) (*TurnView, error) {
	if in.Code == "" {
		return nil, fmt.Errorf("%w: choice code required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sum, res, err := Choose(sess.st, s.data, in.Code, sess.rng)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("month resolved",
		"game_id", id,
		"month", sum.Month,
		"choice", in.Code,
		"success", res.Success,
		"cash", sess.st.Player.Cash,
		"game_over", sess.st.GameOver)
	return &TurnView{Result: res, Summary: sum, Game: newGameView(sess.st, s.data)}, nil
}

type SkipInput struct {
	Months int `json:"months"`
}

// Skip burns skip tickets to fast-forward whole months.
func (s *Service) Skip(ctx context.Context, id string, in SkipInput) (*TurnView, error) {
	if in.Months < 1 {
		in.Months = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sum, err := SkipMonths(sess.st, s.data, in.Months, sess.rng)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("months skipped", "game_id", id, "requested", in.Months, "month", sess.st.Month)
	return &TurnView{Summary: sum, Game: newGameView(sess.st, s.data)}, nil
}

func (s *Service) LastSummary(ctx context.Context, id string) (*TurnSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.st.LastSummary == nil {
		return nil, fmt.Errorf("%w: no completed month yet", ErrNotFound)
	}
	return sess.st.LastSummary, nil
}

func (s *Service) WorldStatus(ctx context.Context, id string) ([]WorldEventView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return newWorldViews(sess.st, s.data), nil
}

func (s *Service) Achievements(ctx context.Context, id string) ([]AchievementView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return newAchievementViews(sess.st, s.data), nil
}

type BorrowInput struct {
	Principal  int64   `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
}

// Borrow opens a loan and credits the principal.
func (s *Service) Borrow(ctx context.Context, id string, in BorrowInput) (*GameView, error) {
	if in.Principal <= 0 {
		return nil, fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if in.AnnualRate < 0 || in.AnnualRate > 1 {
		return nil, fmt.Errorf("%w: annual rate out of range", ErrInvalidInput)
	}
	if in.TermMonths < 1 || in.TermMonths > 360 {
		return nil, fmt.Errorf("%w: term out of range", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.st.GameOver {
		return nil, ErrGameOver
	}
	l := NewLoan(in.Principal, in.AnnualRate, in.TermMonths)
	sess.st.Loans = append(sess.st.Loans, l)
	sess.st.Player.Cash += l.Principal
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("loan opened", "game_id", id, "principal", l.Principal, "term_months", l.TermMonths, "payment", l.MonthlyPayment)
	return newGameView(sess.st, s.data), nil
}

// RepayLoan clears a loan early: the full remaining balance leaves the
// player's cash, which may go negative only at the next game-over scan,
// not here.
func (s *Service) RepayLoan(ctx context.Context, id, loanID string) (*GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.st.GameOver {
		return nil, ErrGameOver
	}
	var (
		found bool
		keep  []*Loan
	)
	for _, l := range sess.st.Loans {
		if l.ID == loanID {
			found = true
			if l.Remaining > sess.st.Player.Cash {
				return nil, fmt.Errorf("%w: insufficient cash", ErrInvalidInput)
			}
			sess.st.Player.Cash -= l.Remaining
			continue
		}
		keep = append(keep, l)
	}
	if !found {
		return nil, fmt.Errorf("%w: loan %s", ErrNotFound, loanID)
	}
	sess.st.Loans = keep
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info("loan repaid early", "game_id", id, "loan_id", loanID)
	return newGameView(sess.st, s.data), nil
}

// session returns the live session, loading it from the store on first
// touch. Callers must hold s.mu.
func (s *Service) session(ctx context.Context, id string) (*session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	if s.store == nil {
		return nil, ErrNotFound
	}
	st, err := s.store.LoadGame(ctx, id)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load game: %w", err)
	}
	st.Normalize()
	sess := &session{st: st, rng: NewLCG(1)}
	sess.rng.Restore(st.Seed)
	s.sessions[id] = sess
	return sess, nil
}

// persist syncs the RNG state into the snapshot and writes it through.
func (s *Service) persist(ctx context.Context, sess *session) error {
	sess.st.Seed = sess.rng.Seed()
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveGame(ctx, sess.st); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}
