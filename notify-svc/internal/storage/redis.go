package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"
	"restaurant-ordering/notify-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	notificationPrefix = "notification:"
	notificationIndex  = "notifications:index"
	dailyPrefix        = "analytics:daily:"
	allTimeKey         = "analytics:alltime"
	dishNamesKey       = "analytics:dishes"
	revokedPrefix      = "session:revoked:"

	dailyRetention = 7 * 24 * time.Hour
)

// RedisNotificationStore keeps each notification as a JSON string and an
// index sorted set scored by timestamp.
type RedisNotificationStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisNotificationStore(client *redis.Client, ttl time.Duration) *RedisNotificationStore {
	return &RedisNotificationStore{Client: client, TTL: ttl}
}

// Save stores n unless a notification with the same ID exists. When the
// index write fails the payload is removed and the error returned.
func (s *RedisNotificationStore) Save(ctx context.Context, n domain.Notification) (bool, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return false, err
	}

	created, err := s.Client.SetNX(ctx, notificationPrefix+n.ID, data, s.TTL).Result()
	if err != nil || !created {
		return false, err
	}

	err = s.Client.ZAdd(ctx, notificationIndex, redis.Z{
		Score:  float64(n.Timestamp.UnixMilli()),
		Member: n.ID,
	}).Err()
	if err != nil {
		// Drop the payload so a redelivered event can store it again.
		if delErr := s.Client.Del(ctx, notificationPrefix+n.ID).Err(); delErr != nil {
			return false, errors.Join(err, delErr)
		}
		return false, err
	}
	return true, nil
}

// List returns up to limit notifications, newest first. Index entries
// whose payload has expired are dropped from the index.
func (s *RedisNotificationStore) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	ids, err := s.Client.ZRevRange(ctx, notificationIndex, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Notification{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = notificationPrefix + id
	}
	values, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(values))
	var stale []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var n domain.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	if len(stale) > 0 {
		s.Client.ZRem(ctx, notificationIndex, stale...)
	}
	return notifications, nil
}

func (s *RedisNotificationStore) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	key := notificationPrefix + id
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var n domain.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	if n.Read {
		return &n, nil
	}

	n.Read = true
	data, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	if err := s.Client.Set(ctx, key, data, redis.KeepTTL).Err(); err != nil {
		return nil, err
	}
	return &n, nil
}

// RedisPopularityStore ranks dishes in a per-day and an all-time sorted
// set. Members are "<category>/<dish id>".
type RedisPopularityStore struct {
	Client *redis.Client
}

func NewRedisPopularityStore(client *redis.Client) *RedisPopularityStore {
	return &RedisPopularityStore{Client: client}
}

func DailyKey(day time.Time) string {
	return dailyPrefix + day.UTC().Format("2006-01-02")
}

func dishMember(item domain.EventItem) string {
	return item.Category + "/" + item.DishID
}

func (s *RedisPopularityStore) Record(ctx context.Context, day time.Time, items []domain.EventItem) error {
	dailyKey := DailyKey(day)
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			if item.DishID == "" || item.Quantity < 1 {
				continue
			}
			member := dishMember(item)
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), member)
			pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), member)
			if item.Name != "" {
				pipe.HSet(ctx, dishNamesKey, member, item.Name)
			}
		}
		pipe.Expire(ctx, dailyKey, dailyRetention)
		return nil
	})
	return err
}

// Top reads the ranking for day, or the all-time ranking when day is nil.
func (s *RedisPopularityStore) Top(ctx context.Context, day *time.Time, limit int) ([]domain.DishPopularity, error) {
	key := allTimeKey
	if day != nil {
		key = DailyKey(*day)
	}

	entries, err := s.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []domain.DishPopularity{}, nil
	}

	members := make([]string, len(entries))
	for i, entry := range entries {
		members[i], _ = entry.Member.(string)
	}
	names, err := s.Client.HMGet(ctx, dishNamesKey, members...).Result()
	if err != nil {
		return nil, err
	}

	ranking := make([]domain.DishPopularity, 0, len(entries))
	for i, entry := range entries {
		category, dishID, _ := strings.Cut(members[i], "/")
		name, _ := names[i].(string)
		ranking = append(ranking, domain.DishPopularity{
			DishID:   dishID,
			Category: category,
			Name:     name,
			Score:    entry.Score,
		})
	}
	return ranking, nil
}

// RedisRevocations reads the revoked-session keys order-svc writes on
// logout.
type RedisRevocations struct {
	Client *redis.Client
}

func (s RedisRevocations) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.Client.Exists(ctx, revokedPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	_ service.NotificationStore = (*RedisNotificationStore)(nil)
	_ service.PopularityStore   = (*RedisPopularityStore)(nil)
	_ service.RevocationChecker = RedisRevocations{}
)
