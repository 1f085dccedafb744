package warband_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
	warbandrepo "github.com/KirkDiggler/warband-api/internal/repositories/warband"
	"github.com/KirkDiggler/warband-api/internal/testutils"
)

type RedisRepositorySuite struct {
	suite.Suite
	repo    warbandrepo.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositorySuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := warbandrepo.NewRedis(&warbandrepo.RedisConfig{
		Client: client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositorySuite) TearDownTest() {
	s.cleanup()
}

func testWarband(id, name string) *weirdos.Warband {
	return &weirdos.Warband{
		ID:         id,
		Name:       name,
		PointLimit: weirdos.PointLimitSkirmish,
		Weirdos: []weirdos.Weirdo{
			{
				ID:   id + "-leader",
				Name: "Boss",
				Kind: weirdos.KindLeader,
				Attributes: map[weirdos.AttributeKind]weirdos.AttributeLevel{
					weirdos.AttributeSpeed:     weirdos.LevelD8,
					weirdos.AttributeDefense:   weirdos.LevelD8,
					weirdos.AttributeFirepower: weirdos.LevelNone,
					weirdos.AttributeProwess:   weirdos.LevelD10,
					weirdos.AttributeWillpower: weirdos.LevelD8,
				},
				Weapons: []string{"Sword"},
			},
		},
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
}

func (s *RedisRepositorySuite) TestCreateAndGet() {
	wb := testWarband("wb_1", "The Breakers")

	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, warbandrepo.GetInput{ID: "wb_1"})
	s.Require().NoError(err)
	s.Equal(wb, out.Warband)
}

func (s *RedisRepositorySuite) TestCreateDuplicate() {
	wb := testWarband("wb_1", "The Breakers")

	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositorySuite) TestCreateRejectsBadInput() {
	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: &weirdos.Warband{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, warbandrepo.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestUpdate() {
	wb := testWarband("wb_1", "The Breakers")
	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().NoError(err)

	wb.Name = "The Breakers Reborn"
	wb.UpdatedAt = 1700001000
	_, err = s.repo.Update(s.ctx, warbandrepo.UpdateInput{Warband: wb})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, warbandrepo.GetInput{ID: "wb_1"})
	s.Require().NoError(err)
	s.Equal("The Breakers Reborn", out.Warband.Name)
	s.Equal(int64(1700001000), out.Warband.UpdatedAt)
}

func (s *RedisRepositorySuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, warbandrepo.UpdateInput{
		Warband: testWarband("missing", "Ghosts"),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestDelete() {
	wb := testWarband("wb_1", "The Breakers")
	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, warbandrepo.DeleteInput{ID: "wb_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, warbandrepo.GetInput{ID: "wb_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, warbandrepo.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Warbands)

	names, err := s.repo.ListNames(s.ctx, warbandrepo.ListNamesInput{})
	s.Require().NoError(err)
	s.Empty(names.Names)
}

func (s *RedisRepositorySuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, warbandrepo.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestList() {
	for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
		wb := testWarband(string(rune('a'+i)), name)
		_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, warbandrepo.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Warbands, 3)

	seen := make(map[string]bool)
	for _, wb := range out.Warbands {
		seen[wb.Name] = true
	}
	s.True(seen["Alpha"] && seen["Bravo"] && seen["Charlie"])
}

func (s *RedisRepositorySuite) TestListNames() {
	for i, name := range []string{"Alpha", "Bravo"} {
		wb := testWarband(string(rune('a'+i)), name)
		_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListNames(s.ctx, warbandrepo.ListNamesInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Alpha", "Bravo"}, out.Names)
}

func (s *RedisRepositorySuite) TestStoredBlobIsJSON() {
	wb := testWarband("wb_1", "The Breakers")
	_, err := s.repo.Create(s.ctx, warbandrepo.CreateInput{Warband: wb})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, warbandrepo.GetInput{ID: "wb_1"})
	s.Require().NoError(err)

	// Round-tripping through the repository must not lose roster detail.
	data, err := json.Marshal(out.Warband)
	s.Require().NoError(err)
	s.Contains(string(data), "Boss")
	s.Equal(warbandrepo.GetKey("wb_1"), "warband:wb_1")
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositorySuite))
}
