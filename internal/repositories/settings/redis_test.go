package settings

import (
	"context"
	"testing"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	setting *models.Setting
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()

	s.setting = &models.Setting{
		Namespace: "emergency-d20",
		Key:       "itemName",
		Name:      "Emergency D20 Item Name",
		Hint:      "Name of the item on the Actor that represents an Emergency D20.",
		Scope:     models.SettingScopeWorld,
		Type:      models.SettingTypeString,
		Default:   "Emergency D20",
	}
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetReturnsDefaultUntilSet() {
	s.Require().NoError(s.repo.Register(s.ctx, &RegisterInput{Setting: s.setting}))

	output, err := s.repo.Get(s.ctx, &GetInput{Namespace: "emergency-d20", Key: "itemName"})
	s.Require().NoError(err)
	s.Equal("Emergency D20", output.Value)
	s.Equal("Emergency D20 Item Name", output.Setting.Name)
	s.Equal(models.SettingScopeWorld, output.Setting.Scope)

	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Namespace: "emergency-d20", Key: "itemName", Value: "Lucky Coin"}))

	output, err = s.repo.Get(s.ctx, &GetInput{Namespace: "emergency-d20", Key: "itemName"})
	s.Require().NoError(err)
	s.Equal("Lucky Coin", output.Value)
}

func (s *RedisRepositoryTestSuite) TestRegisterKeepsStoredValue() {
	s.Require().NoError(s.repo.Register(s.ctx, &RegisterInput{Setting: s.setting}))
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{Namespace: "emergency-d20", Key: "itemName", Value: "Lucky Coin"}))

	// Registering again at the next startup must not reset the value
	s.Require().NoError(s.repo.Register(s.ctx, &RegisterInput{Setting: s.setting}))

	output, err := s.repo.Get(s.ctx, &GetInput{Namespace: "emergency-d20", Key: "itemName"})
	s.Require().NoError(err)
	s.Equal("Lucky Coin", output.Value)
}

func (s *RedisRepositoryTestSuite) TestUnregisteredSetting() {
	_, err := s.repo.Get(s.ctx, &GetInput{Namespace: "emergency-d20", Key: "unknown"})
	s.ErrorIs(err, ErrSettingNotRegistered)

	err = s.repo.Set(s.ctx, &SetInput{Namespace: "emergency-d20", Key: "unknown", Value: "x"})
	s.ErrorIs(err, ErrSettingNotRegistered)
}
