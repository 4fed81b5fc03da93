package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/trio/internal/model"
	"github.com/mcoot/trio/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(DefaultTable())
}

// Cost tests

func (s *ServiceSuite) TestCostFromTable() {
	s.Equal(10, s.service.Cost(model.CellRed))
	s.Equal(25, s.service.Cost(model.CellOrange))
	s.Equal(0, s.service.Cost(model.CellEmpty))
}

func (s *ServiceSuite) TestTableIsCopied() {
	table := Table{model.CellRed: 5, model.CellBlue: 7}
	service := New(table)
	table[model.CellRed] = 100

	s.Equal(5, service.Cost(model.CellRed))
}

func (s *ServiceSuite) TestPaletteInDeclarationOrder() {
	service := New(Table{model.CellOrange: 1, model.CellRed: 1, model.CellBlue: 1})

	s.Equal([]model.CellType{model.CellRed, model.CellBlue, model.CellOrange}, service.Palette())
}

// ScoreCells tests

func (s *ServiceSuite) TestScoreCells() {
	grid := testutil.MustGrid(s.T(), "RYO/GBP")
	cells := model.PositionSet{}
	cells.Add(testutil.Pos(0, 0), testutil.Pos(0, 1), testutil.Pos(0, 2))

	s.Equal(10+15+25, s.service.ScoreCells(grid, cells))
}

func (s *ServiceSuite) TestScoreCellsEmptySet() {
	grid := testutil.MustGrid(s.T(), "RYO/GBP")

	s.Equal(0, s.service.ScoreCells(grid, model.PositionSet{}))
}

// Ranking tests

func (s *ServiceSuite) TestRankPlayersHighestFirstStable() {
	ranked := s.service.RankPlayers([]model.PlayerScore{
		{Player: "a", TotalScore: 10},
		{Player: "b", TotalScore: 30},
		{Player: "c", TotalScore: 10},
	})

	s.Equal("b", ranked[0].Player)
	s.Equal("a", ranked[1].Player)
	s.Equal("c", ranked[2].Player)
}

func (s *ServiceSuite) TestDetermineWinner() {
	ranked := s.service.RankPlayers([]model.PlayerScore{
		{Player: "a", TotalScore: 10},
		{Player: "b", TotalScore: 30},
	})

	s.Equal("b", s.service.DetermineWinner(ranked))
}

func (s *ServiceSuite) TestDetermineWinnerTie() {
	ranked := s.service.RankPlayers([]model.PlayerScore{
		{Player: "a", TotalScore: 30},
		{Player: "b", TotalScore: 30},
	})

	s.Equal("", s.service.DetermineWinner(ranked))
}

func (s *ServiceSuite) TestDetermineWinnerNoPlayers() {
	s.Equal("", s.service.DetermineWinner(nil))
}
