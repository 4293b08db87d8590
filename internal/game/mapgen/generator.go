package mapgen

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minefield/internal/common"
	"github.com/mitchelldurbincs/minefield/internal/game/core"
)

// MapConfig holds configuration for board generation
type MapConfig struct {
	Width     int
	MineCount int
}

// DefaultMapConfig returns the classic 7x7 board with 10 mines
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Width:     7,
		MineCount: 10,
	}
}

// Generator builds mined boards from an injectable random source
type Generator struct {
	config MapConfig
	ints   IntSource
	logger zerolog.Logger
}

// NewGenerator creates a new board generator drawing from rng
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return NewGeneratorWithSource(config, NewRandSource(rng))
}

// NewGeneratorWithSource creates a generator with a custom integer source
func NewGeneratorWithSource(config MapConfig, src IntSource) *Generator {
	return &Generator{
		config: config,
		ints:   src,
		logger: log.With().Str("component", "mapgen").Logger(),
	}
}

// WithLogger replaces the generator's logger
func (g *Generator) WithLogger(logger zerolog.Logger) *Generator {
	g.logger = logger
	return g
}

// GenerateMap creates a new board using the generator's config
func (g *Generator) GenerateMap() (*core.Board, error) {
	board, err := g.GenerateBlankBoard(g.config.Width)
	if err != nil {
		return nil, err
	}

	mines, err := g.GenerateMinePlacement(g.config.Width, g.config.MineCount)
	if err != nil {
		return nil, err
	}

	return MineBoard(board, mines), nil
}

// GenerateBlankBoard builds an all-blank width x width board
func (g *Generator) GenerateBlankBoard(width int) (*core.Board, error) {
	board, err := core.NewBoard(width)
	if err != nil {
		g.logger.Debug().Err(err).Int("width", width).Msg("Rejected board width")
		return nil, err
	}
	return board, nil
}

// GenerateMinePlacement draws mineCount distinct coordinates, each row and
// column picked independently from the integer source. Draws that land on an
// already chosen cell are thrown away and retried. The result keeps the
// order in which coordinates were first drawn. A non-positive mineCount
// yields no mines.
func (g *Generator) GenerateMinePlacement(width, mineCount int) ([]core.Coordinate, error) {
	if err := common.ValidateBoardRequest(width, mineCount); err != nil {
		g.logger.Debug().Err(err).Int("width", width).Int("mine_count", mineCount).Msg("Rejected mine count")
		return nil, err
	}
	if mineCount <= 0 {
		return nil, nil
	}

	chosen := make(map[core.Coordinate]struct{}, mineCount)
	mines := make([]core.Coordinate, 0, mineCount)
	draws := 0

	for len(mines) < mineCount {
		c := g.randomCoordinate(width)
		draws++
		if _, taken := chosen[c]; taken {
			continue
		}
		chosen[c] = struct{}{}
		mines = append(mines, c)
	}

	g.logger.Debug().
		Int("width", width).
		Int("mine_count", mineCount).
		Int("capacity", common.BoardCapacity(width)).
		Int("draws", draws).
		Msg("Placed mines")

	return mines, nil
}

func (g *Generator) randomCoordinate(width int) core.Coordinate {
	label := g.ints.Int(int(core.FirstRowLabel), int(core.FirstRowLabel)+width-1)
	column := g.ints.Int(1, width)
	return core.FromLabel(rune(label), column)
}

// MineBoard marks each mine on board and bumps the count shown on every
// in-bounds neighbor that is not itself a mine. A mine's own cell is only
// marked after its neighbors are updated, so counts never land on mines
// whatever the processing order. board is modified in place and returned.
func MineBoard(board *core.Board, mines []core.Coordinate) *core.Board {
	for _, mine := range mines {
		for _, n := range board.Neighbors(mine) {
			board.Set(n, board.Get(n).Increment())
		}
		board.Set(mine, core.CellMine)
	}
	return board
}

// GenerateBoard is the stateless entry point: blank board, mine placement,
// then neighbor counts. No partial board is returned on error.
func GenerateBoard(width, mineCount int, src IntSource) (*core.Board, error) {
	g := NewGeneratorWithSource(MapConfig{Width: width, MineCount: mineCount}, src)
	return g.GenerateMap()
}
