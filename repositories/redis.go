package repositories

import (
	"context"
	"counting-lab/domain"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

// RedisCountRepository is the Redis-backed Room Count Store.
//
// Key scheme (namespaced under "counting:"):
//  1. "counting:room:{room_id}"    -> hash {current, high, total, last}
//  2. "counting:user:{room_id}"    -> hash contributor -> accepted tally
//  3. "counting:channel:{room_id}" -> counting-channel mapping string
//  4. "counting:rooms"             -> set of known room ids, feeds rankings
//
// Mutations run inside WATCH/MULTI transactions so concurrent callers for
// the same room never interleave a read-modify-write.
type RedisCountRepository struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewRedisCountRepository(rdb *redis.Client, log *slog.Logger) *RedisCountRepository {
	return &RedisCountRepository{rdb: rdb, log: log}
}

func redisRoomKey(room domain.RoomID) string {
	return fmt.Sprintf("counting:room:%s", room)
}

func redisUserKey(room domain.RoomID) string {
	return fmt.Sprintf("counting:user:%s", room)
}

func redisChannelKey(room domain.RoomID) string {
	return fmt.Sprintf("counting:channel:%s", room)
}

const redisRoomsKey = "counting:rooms"

func hashToStats(hash map[string]string) domain.RoomStats {
	field := func(name string) int64 {
		n, _ := strconv.ParseInt(hash[name], 10, 64)
		return n
	}
	return domain.RoomStats{
		Current:       field("current"),
		HighWater:     field("high"),
		TotalAccepted: field("total"),
	}
}

func (r *RedisCountRepository) GetCurrentCount(ctx context.Context, room domain.RoomID) (int64, error) {
	value, err := r.rdb.HGet(ctx, redisRoomKey(room), "current").Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read count: %w", err)
	}
	return strconv.ParseInt(value, 10, 64)
}

func (r *RedisCountRepository) GetLastContributor(ctx context.Context, room domain.RoomID) (string, bool, error) {
	last, err := r.rdb.HGet(ctx, redisRoomKey(room), "last").Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read last contributor: %w", err)
	}
	return last, last != "", nil
}

func (r *RedisCountRepository) Increment(ctx context.Context, room domain.RoomID, contributor string) (int64, error) {
	key := redisRoomKey(room)
	var current int64
	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		hash, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		stats := hashToStats(hash)
		current = stats.Current + 1
		high := stats.HighWater
		if current > high {
			high = current
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				"current", current,
				"high", high,
				"total", stats.TotalAccepted+1,
				"last", contributor,
			)
			pipe.HIncrBy(ctx, redisUserKey(room), contributor, 1)
			pipe.SAdd(ctx, redisRoomsKey, string(room))
			return nil
		})
		return err
	}, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment count: %w", err)
	}
	return current, nil
}

func (r *RedisCountRepository) Reset(ctx context.Context, room domain.RoomID) error {
	key := redisRoomKey(room)
	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "current", 0)
			pipe.HDel(ctx, key, "last")
			pipe.Del(ctx, redisUserKey(room))
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to reset count: %w", err)
	}
	return nil
}

func (r *RedisCountRepository) GetRoomStats(ctx context.Context, room domain.RoomID) (domain.RoomStats, error) {
	hash, err := r.rdb.HGetAll(ctx, redisRoomKey(room)).Result()
	if err != nil {
		return domain.RoomStats{}, fmt.Errorf("failed to read room stats: %w", err)
	}
	return hashToStats(hash), nil
}

func (r *RedisCountRepository) GetGlobalRankings(ctx context.Context) (domain.Rankings, error) {
	rooms, err := r.rdb.SMembers(ctx, redisRoomsKey).Result()
	if err != nil {
		return domain.Rankings{}, fmt.Errorf("failed to list rooms: %w", err)
	}

	type roomEntry struct {
		room  domain.RoomID
		stats domain.RoomStats
	}
	var entries []roomEntry
	for _, room := range rooms {
		stats, err := r.GetRoomStats(ctx, domain.RoomID(room))
		if err != nil {
			return domain.Rankings{}, err
		}
		entries = append(entries, roomEntry{room: domain.RoomID(room), stats: stats})
	}

	ranked := func(value func(domain.RoomStats) int64) []domain.RankingEntry {
		ranking := lo.Map(entries, func(e roomEntry, _ int) domain.RankingEntry {
			return domain.RankingEntry{Room: e.room, Value: value(e.stats)}
		})
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].Value > ranking[j].Value
		})
		return ranking
	}

	return domain.Rankings{
		CurrentCount:  ranked(func(s domain.RoomStats) int64 { return s.Current }),
		HighWater:     ranked(func(s domain.RoomStats) int64 { return s.HighWater }),
		TotalAccepted: ranked(func(s domain.RoomStats) int64 { return s.TotalAccepted }),
	}, nil
}

func (r *RedisCountRepository) GetTotalAcrossRooms(ctx context.Context) (int64, error) {
	rooms, err := r.rdb.SMembers(ctx, redisRoomsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	var total int64
	for _, room := range rooms {
		stats, err := r.GetRoomStats(ctx, domain.RoomID(room))
		if err != nil {
			return 0, err
		}
		total += stats.TotalAccepted
	}
	return total, nil
}

func (r *RedisCountRepository) GetTopContributors(ctx context.Context, room domain.RoomID, limit int) ([]domain.ContributorScore, error) {
	hash, err := r.rdb.HGetAll(ctx, redisUserKey(room)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read contributors: %w", err)
	}
	scores := make([]domain.ContributorScore, 0, len(hash))
	for contributor, value := range hash {
		tally, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt tally for %q: %w", contributor, err)
		}
		scores = append(scores, domain.ContributorScore{Contributor: contributor, Accepted: tally})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Accepted == scores[j].Accepted {
			return scores[i].Contributor < scores[j].Contributor
		}
		return scores[i].Accepted > scores[j].Accepted
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (r *RedisCountRepository) SetCountingRoom(ctx context.Context, room domain.RoomID, channel string) error {
	if err := r.rdb.Set(ctx, redisChannelKey(room), channel, 0).Err(); err != nil {
		return fmt.Errorf("failed to set counting room: %w", err)
	}
	return nil
}

func (r *RedisCountRepository) GetCountingRoom(ctx context.Context, room domain.RoomID) (string, bool, error) {
	channel, err := r.rdb.Get(ctx, redisChannelKey(room)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read counting room: %w", err)
	}
	return channel, true, nil
}

func (r *RedisCountRepository) RemoveRoom(ctx context.Context, room domain.RoomID) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisRoomKey(room), redisUserKey(room), redisChannelKey(room))
		pipe.SRem(ctx, redisRoomsKey, string(room))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove room: %w", err)
	}
	return nil
}
