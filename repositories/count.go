package repositories

import (
	"bytes"
	"context"
	"counting-lab/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// CountRepository persists per-room counting state in BadgerDB.
//
// Key scheme:
//  1. "room:{room_id}"               -> JSON roomRecord (counters + last contributor)
//  2. "user:{room_id}:{contributor}" -> JSON tally of accepted contributions
//  3. "channel:{room_id}"            -> counting-channel mapping for the gateway
//
// The room prefix enables rankings and totals through a single prefix scan;
// the user prefix keeps contributor history isolated per room so Reset can
// clear it without touching other rooms.
type CountRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCountRepository(db *badger.DB, log *slog.Logger) *CountRepository {
	return &CountRepository{db: db, log: log}
}

// roomRecord is the stored shape of one room's state.
// Current only ever moves by +1 or back to zero; High and Total never decrease.
type roomRecord struct {
	Current int64  `json:"current"`
	High    int64  `json:"high"`
	Total   int64  `json:"total"`
	Last    string `json:"last,omitempty"`
}

func roomKey(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("room:%s", room))
}

func userKey(room domain.RoomID, contributor string) []byte {
	return []byte(fmt.Sprintf("user:%s:%s", room, contributor))
}

func userPrefix(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("user:%s:", room))
}

func channelKey(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("channel:%s", room))
}

// readRecord loads a room record inside txn; an unknown room is a zero record.
func readRecord(txn *badger.Txn, room domain.RoomID) (roomRecord, error) {
	var record roomRecord
	item, err := txn.Get(roomKey(room))
	if err == badger.ErrKeyNotFound {
		return record, nil
	}
	if err != nil {
		return record, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	return record, err
}

func writeRecord(txn *badger.Txn, room domain.RoomID, record roomRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return txn.Set(roomKey(room), value)
}

func (r *CountRepository) GetCurrentCount(_ context.Context, room domain.RoomID) (int64, error) {
	var current int64
	err := r.db.View(func(txn *badger.Txn) error {
		record, err := readRecord(txn, room)
		if err != nil {
			return err
		}
		current = record.Current
		return nil
	})
	return current, err
}

func (r *CountRepository) GetLastContributor(_ context.Context, room domain.RoomID) (string, bool, error) {
	var last string
	err := r.db.View(func(txn *badger.Txn) error {
		record, err := readRecord(txn, room)
		if err != nil {
			return err
		}
		last = record.Last
		return nil
	})
	return last, last != "", err
}

// Increment advances the room's count by one and updates the contributor,
// high-water mark, total and per-user tally in a single transaction.
func (r *CountRepository) Increment(_ context.Context, room domain.RoomID, contributor string) (int64, error) {
	var current int64
	err := r.db.Update(func(txn *badger.Txn) error {
		record, err := readRecord(txn, room)
		if err != nil {
			return err
		}
		record.Current++
		record.Total++
		record.Last = contributor
		if record.Current > record.High {
			record.High = record.Current
		}
		current = record.Current

		tally, err := readTally(txn, userKey(room, contributor))
		if err != nil {
			return err
		}
		if err = writeTally(txn, userKey(room, contributor), tally+1); err != nil {
			return err
		}
		return writeRecord(txn, room, record)
	})
	return current, err
}

// Reset zeroes the count and wipes the room's contributor history,
// keeping the monotonic statistics.
func (r *CountRepository) Reset(_ context.Context, room domain.RoomID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		record, err := readRecord(txn, room)
		if err != nil {
			return err
		}
		record.Current = 0
		record.Last = ""
		if err = deletePrefix(txn, userPrefix(room)); err != nil {
			return err
		}
		return writeRecord(txn, room, record)
	})
}

func (r *CountRepository) GetRoomStats(_ context.Context, room domain.RoomID) (domain.RoomStats, error) {
	var stats domain.RoomStats
	err := r.db.View(func(txn *badger.Txn) error {
		record, err := readRecord(txn, room)
		if err != nil {
			return err
		}
		stats = domain.RoomStats{
			Current:       record.Current,
			HighWater:     record.High,
			TotalAccepted: record.Total,
		}
		return nil
	})
	return stats, err
}

// GetGlobalRankings scans the room prefix once and sorts each statistic
// descending.
func (r *CountRepository) GetGlobalRankings(_ context.Context) (domain.Rankings, error) {
	type roomEntry struct {
		room   domain.RoomID
		record roomRecord
	}
	var entries []roomEntry
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("room:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			room := domain.RoomID(bytes.TrimPrefix(item.Key(), prefix))
			err := item.Value(func(val []byte) error {
				var record roomRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				entries = append(entries, roomEntry{room: room, record: record})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Rankings{}, err
	}

	ranked := func(value func(roomRecord) int64) []domain.RankingEntry {
		ranking := lo.Map(entries, func(e roomEntry, _ int) domain.RankingEntry {
			return domain.RankingEntry{Room: e.room, Value: value(e.record)}
		})
		sort.SliceStable(ranking, func(i, j int) bool {
			return ranking[i].Value > ranking[j].Value
		})
		return ranking
	}

	return domain.Rankings{
		CurrentCount:  ranked(func(r roomRecord) int64 { return r.Current }),
		HighWater:     ranked(func(r roomRecord) int64 { return r.High }),
		TotalAccepted: ranked(func(r roomRecord) int64 { return r.Total }),
	}, nil
}

func (r *CountRepository) GetTotalAcrossRooms(_ context.Context) (int64, error) {
	var total int64
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("room:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record roomRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				total += record.Total
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return total, err
}

func (r *CountRepository) GetTopContributors(_ context.Context, room domain.RoomID, limit int) ([]domain.ContributorScore, error) {
	var scores []domain.ContributorScore
	prefix := userPrefix(room)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			contributor := string(bytes.TrimPrefix(item.Key(), prefix))
			err := item.Value(func(val []byte) error {
				var tally int64
				if err := json.Unmarshal(val, &tally); err != nil {
					return err
				}
				scores = append(scores, domain.ContributorScore{Contributor: contributor, Accepted: tally})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Accepted > scores[j].Accepted
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (r *CountRepository) SetCountingRoom(_ context.Context, room domain.RoomID, channel string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(channelKey(room), []byte(channel))
	})
}

func (r *CountRepository) GetCountingRoom(_ context.Context, room domain.RoomID) (string, bool, error) {
	var channel string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(channelKey(room))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			channel = string(val)
			return nil
		})
	})
	return channel, channel != "", err
}

// RemoveRoom deletes every record belonging to the room.
func (r *CountRepository) RemoveRoom(_ context.Context, room domain.RoomID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, userPrefix(room)); err != nil {
			return err
		}
		if err := txn.Delete(channelKey(room)); err != nil {
			return err
		}
		return txn.Delete(roomKey(room))
	})
}

func readTally(txn *badger.Txn, key []byte) (int64, error) {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var tally int64
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &tally)
	})
	return tally, err
}

func writeTally(txn *badger.Txn, key []byte, tally int64) error {
	value, err := json.Marshal(tally)
	if err != nil {
		return err
	}
	return txn.Set(key, value)
}

// deletePrefix removes all keys under prefix inside the current transaction.
// Keys are collected first because deleting while iterating invalidates
// the iterator.
func deletePrefix(txn *badger.Txn, prefix []byte) error {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
