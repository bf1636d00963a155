package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"twitter-gate-service/domain"
	"twitter-gate-service/service"
	"twitter-gate-service/twitter"
)

type followListMock struct {
	twitter.Modern

	followers      []domain.TwitterUser
	following      []domain.TwitterUser
	followersCalls int
	followingCalls int
	lastCount      int
}

func (m *followListMock) Followers(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error) {
	m.followersCalls++
	m.lastCount = count
	return m.followers, nil
}

func (m *followListMock) Following(ctx context.Context, userId string, count int, cursor string) ([]domain.TwitterUser, error) {
	m.followingCalls++
	m.lastCount = count
	return m.following, nil
}

func users(count int) []domain.TwitterUser {
	result := make([]domain.TwitterUser, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, domain.TwitterUser{
			Id:       fmt.Sprintf("id-%d", i),
			Username: fmt.Sprintf("user%d", i),
		})
	}
	return result
}

func TestFollowersYouKnowTruncatesToCount(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &followListMock{followers: users(5)}
	svc := service.NewUser(clientsMock{modern: modern})

	result, err := svc.FollowersYouKnow(context.Background(), domain.FollowListRequest{
		UserId: "1",
		Count:  intPtr(3),
	})

	require.NoError(err)
	require.Len(result, 3)
	require.EqualValues("id-0", result[0].Id)
}

func TestSubscriptionsServedByFollowing(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &followListMock{following: users(2)}
	svc := service.NewUser(clientsMock{modern: modern})

	result, err := svc.Subscriptions(context.Background(), domain.FollowListRequest{UserId: "1"})

	require.NoError(err)
	require.Len(result, 2)
	require.EqualValues(1, modern.followingCalls)
	require.EqualValues(0, modern.followersCalls)
}

func TestFollowListCountClamped(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	modern := &followListMock{}
	svc := service.NewUser(clientsMock{modern: modern})

	_, err := svc.Followers(context.Background(), domain.FollowListRequest{
		UserId: "1",
		Count:  intPtr(500),
	})
	require.NoError(err)
	require.EqualValues(100, modern.lastCount)

	_, err = svc.Followers(context.Background(), domain.FollowListRequest{UserId: "1"})
	require.NoError(err)
	require.EqualValues(100, modern.lastCount)
}
