package leaderboard

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/progress"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  DialTimeout,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgRedisPing, err)
	}
	return client, nil
}

// RedisLeaderboard keeps XP in a sorted set keyed by user id
type RedisLeaderboard struct {
	client redis.Cmdable
	key    string
}

// NewRedisLeaderboard creates a leaderboard on the given sorted set key (DefaultKey when empty)
func NewRedisLeaderboard(client redis.Cmdable, key string) *RedisLeaderboard {
	if key == "" {
		key = DefaultKey
	}
	return &RedisLeaderboard{client: client, key: key}
}

// Record stores xp for the user. Scores only move up, so a late write from an
// older update cannot lower a newer score.
func (l *RedisLeaderboard) Record(ctx context.Context, userID string, xp int64) error {
	err := l.client.ZAddArgs(ctx, l.key, redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: float64(xp), Member: userID}},
	}).Err()
	if err != nil {
		return fmt.Errorf(ErrMsgRecordFailed, err)
	}
	return nil
}

// Top returns the highest scores. Equal XP shares a rank, like SQL RANK().
func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = ClampLimit(limit)

	scores, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTopFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		xp := int64(z.Score)
		rank := i + 1
		if i > 0 && entries[i-1].XP == xp {
			rank = entries[i-1].Rank
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:   rank,
			UserID: fmt.Sprint(z.Member),
			XP:     xp,
			Level:  progress.CalculateLevel(xp),
		})
	}
	return entries, nil
}

// Rebuild copies the top users from the database into the sorted set
func (l *RedisLeaderboard) Rebuild(ctx context.Context, src TopUsersReader, limit int) error {
	users, err := src.GetTopUsersByXP(ctx, limit)
	if err != nil {
		return fmt.Errorf(ErrMsgRebuildRead, err)
	}
	if len(users) == 0 {
		return nil
	}

	_, err = l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, u := range users {
			pipe.ZAddArgs(ctx, l.key, redis.ZAddArgs{
				GT:      true,
				Members: []redis.Z{{Score: float64(u.XP), Member: u.UserID}},
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf(ErrMsgRebuildWrite, err)
	}

	logger.FromContext(ctx).Info(LogMsgRebuilt, "users", len(users))
	return nil
}
