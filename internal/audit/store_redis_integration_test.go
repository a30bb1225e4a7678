//go:build integration

package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"walletgate/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = NewRedisStore(s.redis.Client, 3)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.Client.FlushDB(context.Background()).Err())
}

func (s *RedisStoreSuite) TestRoundTripsEvents() {
	ctx := context.Background()
	at := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	s.Require().NoError(s.store.Append(ctx, Event{
		Timestamp: at,
		HolderDID: holder,
		Subject:   "lc:contract:skills",
		Action:    "consent_accepted",
		Count:     2,
	}))

	events, err := s.store.ListByHolder(ctx, holder)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.True(at.Equal(events[0].Timestamp))
	s.Equal("lc:contract:skills", events[0].Subject)
	s.Equal(2, events[0].Count)
}

func (s *RedisStoreSuite) TestRetentionDropsOldest() {
	ctx := context.Background()
	for i := range 5 {
		s.Require().NoError(s.store.Append(ctx, Event{HolderDID: holder, Action: fmt.Sprintf("a%d", i)}))
	}

	events, err := s.store.ListByHolder(ctx, holder)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.Equal("a2", events[0].Action)
	s.Equal("a4", events[2].Action)
}

func (s *RedisStoreSuite) TestUnknownHolder() {
	_, err := s.store.ListByHolder(context.Background(), "did:example:nobody")
	s.ErrorIs(err, ErrNotFound)
}
