package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minefield/internal/game/core"
	"github.com/mitchelldurbincs/minefield/internal/game/events"
	"github.com/mitchelldurbincs/minefield/internal/game/mapgen"
)

// BoardService holds the most recently created board. It is a thin stateful
// wrapper around mapgen.GenerateBoard; access is serialized so one service
// can be shared between goroutines.
type BoardService struct {
	mu      sync.RWMutex
	ints    mapgen.IntSource
	board   *core.Board
	boardID uuid.UUID

	bus    events.Publisher
	logger zerolog.Logger
}

// ServiceOption configures a BoardService
type ServiceOption func(*BoardService)

// WithEventPublisher sends board events to p
func WithEventPublisher(p events.Publisher) ServiceOption {
	return func(s *BoardService) { s.bus = p }
}

// WithLogger replaces the service logger
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *BoardService) { s.logger = logger }
}

// NewBoardService creates a service drawing mine positions from src. A nil
// src falls back to a time-seeded math/rand source.
func NewBoardService(src mapgen.IntSource, opts ...ServiceOption) *BoardService {
	if src == nil {
		src = mapgen.NewRandSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	s := &BoardService{
		ints:   src,
		logger: log.With().Str("component", "board_service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBoard generates a new board and makes it the current one. On error
// the previous board is kept.
func (s *BoardService) CreateBoard(width, mineCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	g := mapgen.NewGeneratorWithSource(mapgen.MapConfig{Width: width, MineCount: mineCount}, s.ints).
		WithLogger(s.logger)
	board, err := g.GenerateMap()
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int("width", width).
			Int("mine_count", mineCount).
			Msg("Board creation rejected")
		s.publish(events.NewBoardRejectedEvent(width, mineCount, err))
		return err
	}

	s.board = board
	s.boardID = uuid.New()
	elapsed := time.Since(start)

	s.logger.Info().
		Str("board_id", s.boardID.String()).
		Int("width", width).
		Int("mine_count", mineCount).
		Dur("elapsed", elapsed).
		Msg("Board created")
	s.publish(events.NewBoardCreatedEvent(s.boardID.String(), width, mineCount, elapsed))
	return nil
}

// CreateDefaultBoard creates a board with the default width and mine count
func (s *BoardService) CreateDefaultBoard() error {
	config := mapgen.DefaultMapConfig()
	return s.CreateBoard(config.Width, config.MineCount)
}

// Board returns a copy of the current board, or nil if none has been created.
func (s *BoardService) Board() *core.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.board == nil {
		return nil
	}
	return s.board.Clone()
}

// BoardID returns the identifier of the current board, or uuid.Nil.
func (s *BoardService) BoardID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boardID
}

func (s *BoardService) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
