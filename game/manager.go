package game

import (
	"context"

	mapset "github.com/deckarep/golang-set"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hijack-gaming/holdem-engine/logging"
	"github.com/hijack-gaming/holdem-engine/util"
)

var managerLogger = log.With().Str("logger_name", "game::manager").Logger()

// TableUpdatePublisher broadcasts a snapshot after a successful stage.
// Publishing is best-effort: implementations log failures and never
// propagate them back into the stage result.
type TableUpdatePublisher interface {
	PublishTableUpdate(g *Game, players []*Player)
}

// TableConfig is the per-table configuration applied when a table is
// created.
type TableConfig struct {
	MaxSeats   int     `json:"maxSeats"`
	SmallBlind float64 `json:"smallBlind"`
	BigBlind   float64 `json:"bigBlind"`
}

// SeatConfig seats one player with a starting stack.
type SeatConfig struct {
	Seat  int     `json:"seat"`
	Name  string  `json:"name"`
	BuyIn float64 `json:"buyIn"`
}

// Manager is the external driver around the engine: it fetches a
// snapshot, advances exactly one stage, persists the result, then
// broadcasts it. Callers must not process the same table concurrently.
type Manager struct {
	store     TableStore
	publisher TableUpdatePublisher
	engine    *Engine
	logger    *zerolog.Logger
}

func NewManager(store TableStore, publisher TableUpdatePublisher, engine *Engine) *Manager {
	if engine == nil {
		engine = NewEngine(nil, nil)
	}
	return &Manager{
		store:     store,
		publisher: publisher,
		engine:    engine,
		logger:    &managerLogger,
	}
}

// CreateTable seats the given players at a new table and persists the
// initial snapshot at GamePrep. At least two players are required.
func (m *Manager) CreateTable(ctx context.Context, tableID string, config TableConfig, seats []SeatConfig) (*Snapshot, error) {
	if len(seats) < 2 {
		return nil, errors.Errorf("cannot create table %s with %d players, need at least 2", tableID, len(seats))
	}
	if config.MaxSeats <= 0 {
		config.MaxSeats = 9
	}

	takenSeats := mapset.NewSet()
	players := make([]*Player, 0, len(seats))
	for _, seat := range seats {
		if seat.Seat < 1 || seat.Seat > config.MaxSeats {
			return nil, errors.Errorf("seat %d out of range 1..%d", seat.Seat, config.MaxSeats)
		}
		if takenSeats.Contains(seat.Seat) {
			return nil, errors.Errorf("seat %d is taken by more than one player", seat.Seat)
		}
		takenSeats.Add(seat.Seat)
		players = append(players, &Player{
			PlayerID: uuid.New().String(),
			Name:     seat.Name,
			Seat:     seat.Seat,
			Stack:    seat.BuyIn,
			Status:   PlayerStatusActive,
		})
	}

	snapshot := &Snapshot{
		Game: &Game{
			TableID:    tableID,
			HandNum:    1,
			Stage:      GamePrep,
			Status:     GameStatusInProgress,
			MaxSeats:   config.MaxSeats,
			SmallBlind: config.SmallBlind,
			BigBlind:   config.BigBlind,
		},
		Players: players,
	}

	if err := m.store.Save(ctx, snapshot); err != nil {
		return nil, errors.Wrapf(err, "persisting new table %s", tableID)
	}

	m.logger.Info().
		Str(logging.TableIDKey, tableID).
		Int("numPlayers", len(players)).
		Msg("Table created")
	return snapshot, nil
}

// ProcessTable advances the table's hand by one stage. A completed
// hand rolls over into the next one before the stage runs. The updated
// snapshot is persisted before it is broadcast; broadcast failures
// never fail the stage.
func (m *Manager) ProcessTable(ctx context.Context, tableID string) (*Snapshot, error) {
	snapshot, err := m.store.Fetch(ctx, tableID)
	if err != nil {
		return nil, err
	}
	g, players := snapshot.Game, snapshot.Players

	if g.Status == GameStatusCompleted {
		g.HandNum++
		g.Stage = GamePrep
		g.Status = GameStatusInProgress
	}

	if err := m.engine.Advance(g, players); err != nil {
		return nil, errors.Wrapf(err, "advancing table %s", tableID)
	}

	if err := m.store.Save(ctx, snapshot); err != nil {
		return nil, errors.Wrapf(err, "persisting table %s", tableID)
	}

	if m.publisher != nil {
		m.publisher.PublishTableUpdate(g, players)
	}

	m.logger.Debug().
		Str(logging.TableIDKey, tableID).
		Uint32(logging.HandNumKey, g.HandNum).
		Str(logging.StageKey, g.Stage.String()).
		Msg("Table processed")
	return snapshot, nil
}

// RequestAddOn records a chip purchase for a seated player. The chips
// are applied by the engine between hands.
func (m *Manager) RequestAddOn(ctx context.Context, tableID string, seat int, amount float64) (*Snapshot, error) {
	if amount <= 0 {
		return nil, errors.Errorf("invalid add-on amount %f", amount)
	}

	snapshot, err := m.store.Fetch(ctx, tableID)
	if err != nil {
		return nil, err
	}
	p := PlayerBySeat(snapshot.Players, seat)
	if p == nil {
		return nil, errors.Errorf("no player at seat %d of table %s", seat, tableID)
	}
	p.PendingAddOn = util.ToMoney(p.PendingAddOn + amount)

	if err := m.store.Save(ctx, snapshot); err != nil {
		return nil, errors.Wrapf(err, "persisting table %s", tableID)
	}

	m.logger.Info().
		Str(logging.TableIDKey, tableID).
		Int(logging.SeatNumKey, seat).
		Float64("addOn", amount).
		Msg("Add-on requested")
	return snapshot, nil
}

// FetchTable returns the current snapshot for a table.
func (m *Manager) FetchTable(ctx context.Context, tableID string) (*Snapshot, error) {
	return m.store.Fetch(ctx, tableID)
}
