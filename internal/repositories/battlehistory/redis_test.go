package battlehistory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	mockhistory "github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockhistory.MockTimeProvider
	repo         Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockhistory.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedis(&RedisRepoConfig{
		Client:       s.mockClient,
		Capacity:     3,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestAppend() {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.timeProvider.EXPECT().Now().Return(now)

	record := &entities.BattleRecord{
		ID:          "battle-1",
		ChannelID:   "channel-1",
		MonsterName: "시스템",
		Winner:      entities.WinnerUsers,
		Rounds:      4,
	}

	expected := *record
	expected.EndedAt = now
	data, err := json.Marshal(&expected)
	s.Require().NoError(err)

	s.mock.ExpectLPush(historyKey, string(data)).SetVal(1)
	s.mock.ExpectLTrim(historyKey, 0, 2).SetVal("OK")

	s.NoError(s.repo.Append(ctx, record))
	s.Equal(now, record.EndedAt)
}

func (s *RedisRepoTestSuite) TestAppend_KeepsExistingTimestamp() {
	ctx := context.Background()
	ended := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	record := &entities.BattleRecord{ID: "battle-2", Winner: entities.WinnerAdmin, EndedAt: ended}

	data, err := json.Marshal(record)
	s.Require().NoError(err)

	s.mock.ExpectLPush(historyKey, string(data)).SetVal(1)
	s.mock.ExpectLTrim(historyKey, 0, 2).SetErr(errors.New("redis down"))

	s.Error(s.repo.Append(ctx, record))
}

func (s *RedisRepoTestSuite) TestAppend_Nil() {
	s.Error(s.repo.Append(context.Background(), nil))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	newer, err := json.Marshal(&entities.BattleRecord{ID: "b2", Winner: entities.WinnerAdmin, Rounds: 2})
	s.Require().NoError(err)
	older, err := json.Marshal(&entities.BattleRecord{ID: "b1", Winner: entities.WinnerUsers, Rounds: 5})
	s.Require().NoError(err)

	s.mock.ExpectLRange(historyKey, 0, 2).SetVal([]string{string(newer), string(older)})

	records, err := s.repo.List(ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("b2", records[0].ID)
	s.Equal(5, records[1].Rounds)
}

func (s *RedisRepoTestSuite) TestList_Limit() {
	ctx := context.Background()
	s.mock.ExpectLRange(historyKey, 0, 0).SetVal([]string{})

	records, err := s.repo.List(ctx, 1)
	s.NoError(err)
	s.Empty(records)
}

func (s *RedisRepoTestSuite) TestList_Corrupt() {
	s.mock.ExpectLRange(historyKey, 0, 2).SetVal([]string{"{not json"})

	_, err := s.repo.List(context.Background(), 0)
	s.Error(err)
}
