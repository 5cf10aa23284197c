package skillstates

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	store      Store
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.store = NewRedis(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) state() *entities.ChannelState {
	state := entities.NewChannelState()
	state.ActiveSkills[entities.SkillKaron] = &entities.SkillInstance{UserID: "u1", RoundsLeft: 2}
	return state
}

func (s *RedisStoreTestSuite) TestSave() {
	ctx := context.Background()
	data, err := json.Marshal(s.state())
	s.Require().NoError(err)

	s.mock.ExpectHSet(statesKey, "c1", string(data)).SetVal(1)
	s.mock.ExpectHDel(statesKey, "c9").SetVal(1)

	s.NoError(s.store.Save(ctx, map[string]*entities.ChannelState{"c1": s.state()}, []string{"c9"}))
}

func (s *RedisStoreTestSuite) TestSave_EmptyStateIsDeleted() {
	s.mock.ExpectHDel(statesKey, "c1").SetVal(1)

	s.NoError(s.store.Save(context.Background(), map[string]*entities.ChannelState{"c1": entities.NewChannelState()}, nil))
}

func (s *RedisStoreTestSuite) TestSave_Nothing() {
	s.NoError(s.store.Save(context.Background(), nil, nil))
}

func (s *RedisStoreTestSuite) TestSave_Error() {
	data, err := json.Marshal(s.state())
	s.Require().NoError(err)
	s.mock.ExpectHSet(statesKey, "c1", string(data)).SetErr(errors.New("redis down"))

	s.Error(s.store.Save(context.Background(), map[string]*entities.ChannelState{"c1": s.state()}, nil))
}

func (s *RedisStoreTestSuite) TestLoad() {
	data, err := json.Marshal(s.state())
	s.Require().NoError(err)
	s.mock.ExpectHGetAll(statesKey).SetVal(map[string]string{
		"c1": string(data),
		"c2": "{corrupt",
	})

	states, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Len(states, 1)
	s.Equal(2, states["c1"].ActiveSkills[entities.SkillKaron].RoundsLeft)
}

func (s *RedisStoreTestSuite) TestLoad_Error() {
	s.mock.ExpectHGetAll(statesKey).SetErr(errors.New("redis down"))

	_, err := s.store.Load(context.Background())
	s.Error(err)
}
