//go:build integration

package cik_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"cik/pkg/cik"
	"cik/pkg/testutil/containers"
)

type RedisSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisSuite))
}

func (s *RedisSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisSuite) TestSetGet() {
	ctx := context.Background()
	apple := cik.MustBuild(320193)

	s.Require().NoError(s.redis.Client.Set(ctx, "filer:apple", apple, 0).Err())

	raw, err := s.redis.Client.Get(ctx, "filer:apple").Result()
	s.Require().NoError(err)
	s.Equal("320193", raw, "stored as the canonical text")

	var got cik.CIK
	s.Require().NoError(s.redis.Client.Get(ctx, "filer:apple").Scan(&got))
	s.Equal(apple, got)
}

func (s *RedisSuite) TestSetMembers() {
	ctx := context.Background()
	members := []any{cik.MustBuild(1750), cik.MustBuild(320193), cik.MustBuild(cik.MaxValue)}

	s.Require().NoError(s.redis.Client.SAdd(ctx, "filers", members...).Err())

	raw, err := s.redis.Client.SMembers(ctx, "filers").Result()
	s.Require().NoError(err)
	s.Len(raw, 3)
	for _, m := range raw {
		_, err := cik.Parse(m)
		s.NoError(err, m)
	}
}

func (s *RedisSuite) TestScanRejectsInvalidValue() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, "filer:bad", "0", 0).Err())

	var got cik.CIK
	err := s.redis.Client.Get(ctx, "filer:bad").Scan(&got)
	s.ErrorIs(err, cik.ErrInvalidValue)
	s.True(got.IsZero())
}

func (s *RedisSuite) TestZeroValueIsNotWritten() {
	ctx := context.Background()
	err := s.redis.Client.Set(ctx, "filer:none", cik.CIK{}, 0).Err()
	s.Error(err)

	n, err := s.redis.Client.Exists(ctx, "filer:none").Result()
	s.Require().NoError(err)
	s.Zero(n)
}
