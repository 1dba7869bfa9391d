package memory

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type state struct {
	seq      int64
	teams    map[int64]team.Team
	players  map[int64]player.Player
	matches  map[int64]match.Match
	roster   map[int64][]int64
	goals    map[int64]match.Goal
	quarters map[int64][]match.QuarterScore
}

func newState() *state {
	return &state{
		teams:    make(map[int64]team.Team),
		players:  make(map[int64]player.Player),
		matches:  make(map[int64]match.Match),
		roster:   make(map[int64][]int64),
		goals:    make(map[int64]match.Goal),
		quarters: make(map[int64][]match.QuarterScore),
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *state) clone() *state {
	out := newState()
	out.seq = s.seq
	for k, v := range s.teams {
		out.teams[k] = v
	}
	for k, v := range s.players {
		out.players[k] = v
	}
	for k, v := range s.matches {
		v.MOMPlayerID = copyID(v.MOMPlayerID)
		v.PlayerIDs = append([]int64(nil), v.PlayerIDs...)
		out.matches[k] = v
	}
	for k, v := range s.roster {
		out.roster[k] = append([]int64(nil), v...)
	}
	for k, v := range s.goals {
		v.AssistPlayerID = copyID(v.AssistPlayerID)
		out.goals[k] = v
	}
	for k, v := range s.quarters {
		out.quarters[k] = append([]match.QuarterScore(nil), v...)
	}
	return out
}

// Store is an in-process database. Transactions work on a private copy that
// replaces the live state on commit, so a failed transaction leaves no trace.
// Writers are serialized; readers see the last committed state.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	live    *state
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		live: newState(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Repos returns repositories that read committed state and auto-commit each
// write.
func (s *Store) Repos() usecase.Repositories {
	return s.repositories(liveHandle{store: s})
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	return s.commit(ctx, func(work *state) error {
		return fn(ctx, s.repositories(txHandle{st: work}))
	})
}

func (s *Store) commit(ctx context.Context, fn func(work *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	work := s.live.clone()
	s.mu.RUnlock()

	if err := fn(work); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return crerr.Wrap(err, "commit memory transaction")
	}

	s.mu.Lock()
	s.live = work
	s.mu.Unlock()
	return nil
}

func (s *Store) repositories(h handle) usecase.Repositories {
	return usecase.Repositories{
		Teams:   &TeamRepository{h: h, now: s.now},
		Players: &PlayerRepository{h: h, now: s.now},
		Matches: &MatchRepository{h: h, now: s.now},
		Goals:   &GoalRepository{h: h, now: s.now},
	}
}

type handle interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

type liveHandle struct {
	store *Store
}

func (h liveHandle) read(fn func(st *state) error) error {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return fn(h.store.live)
}

func (h liveHandle) write(fn func(st *state) error) error {
	return h.store.commit(context.Background(), fn)
}

type txHandle struct {
	st *state
}

func (h txHandle) read(fn func(st *state) error) error {
	return fn(h.st)
}

func (h txHandle) write(fn func(st *state) error) error {
	return fn(h.st)
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
