package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"
	"restaurant-ordering/notify-svc/internal/service"
	"restaurant-ordering/notify-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisNotificationStore_SaveIsIdempotent(t *testing.T) {
	mr, client := newRedis(t)
	store := storage.NewRedisNotificationStore(client, time.Hour)
	ctx := context.Background()

	n := service.NewOrderNotification(orderCreated("o1"))

	created, err := store.Save(ctx, n)
	require.NoError(t, err)
	assert.True(t, created)

	n.Message = "changed"
	created, err = store.Save(ctx, n)
	require.NoError(t, err)
	assert.False(t, created)

	list, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "New order from Ana", list[0].Message)
	assert.Equal(t, time.Hour, mr.TTL("notification:order_o1"))
}

func TestRedisNotificationStore_SaveRollsBackWhenIndexFails(t *testing.T) {
	mr, client := newRedis(t)
	store := storage.NewRedisNotificationStore(client, time.Hour)
	ctx := context.Background()

	// A string under the index key makes ZADD fail with WRONGTYPE.
	require.NoError(t, mr.Set("notifications:index", "not-a-zset"))
	n := service.NewOrderNotification(orderCreated("o1"))

	created, err := store.Save(ctx, n)
	assert.Error(t, err)
	assert.False(t, created)
	assert.False(t, mr.Exists("notification:order_o1"))

	mr.Del("notifications:index")
	created, err = store.Save(ctx, n)
	require.NoError(t, err)
	assert.True(t, created)

	list, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "order_o1", list[0].ID)
}

func TestRedisNotificationStore_ListNewestFirst(t *testing.T) {
	mr, client := newRedis(t)
	store := storage.NewRedisNotificationStore(client, 0)
	ctx := context.Background()

	for i, id := range []string{"o1", "o2", "o3"} {
		event := orderCreated(id)
		event.Timestamp = placedAt.Add(time.Duration(i) * time.Minute)
		_, err := store.Save(ctx, service.NewOrderNotification(event))
		require.NoError(t, err)
	}

	list, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "order_o3", list[0].ID)
	assert.Equal(t, "order_o2", list[1].ID)

	mr.Del("notification:order_o3")
	list, err = store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "order_o2", list[0].ID)

	members, err := mr.ZMembers("notifications:index")
	require.NoError(t, err)
	assert.NotContains(t, members, "order_o3")
}

func TestRedisNotificationStore_MarkRead(t *testing.T) {
	_, client := newRedis(t)
	store := storage.NewRedisNotificationStore(client, time.Hour)
	ctx := context.Background()

	_, err := store.Save(ctx, service.NewOrderNotification(orderCreated("o1")))
	require.NoError(t, err)

	n, err := store.MarkRead(ctx, "order_o1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	list, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.True(t, list[0].Read)

	_, err = store.MarkRead(ctx, "order_missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRedisPopularityStore(t *testing.T) {
	mr, client := newRedis(t)
	store := storage.NewRedisPopularityStore(client)
	ctx := context.Background()

	first := orderCreated("o1").Items
	second := []domain.EventItem{{DishID: "sangria", Category: "drinks", Name: "Sangria", Quantity: 4}}
	require.NoError(t, store.Record(ctx, placedAt, first))
	require.NoError(t, store.Record(ctx, placedAt.Add(24*time.Hour), second))

	today, err := store.Top(ctx, &placedAt, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishPopularity{
		{DishID: "paella", Category: "mains", Name: "Paella", Score: 2},
		{DishID: "sangria", Category: "drinks", Name: "Sangria", Score: 1},
	}, today)

	allTime, err := store.Top(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishPopularity{
		{DishID: "sangria", Category: "drinks", Name: "Sangria", Score: 5},
	}, allTime)

	assert.True(t, mr.Exists(storage.DailyKey(placedAt)))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(storage.DailyKey(placedAt)))

	empty := placedAt.Add(-48 * time.Hour)
	none, err := store.Top(ctx, &empty, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRedisRevocations(t *testing.T) {
	mr, client := newRedis(t)
	revocations := storage.RedisRevocations{Client: client}
	ctx := context.Background()

	revoked, err := revocations.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, mr.Set("session:revoked:s1", "1"))
	revoked, err = revocations.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
