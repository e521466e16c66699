package game

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// RedisTableStore persists snapshots in Redis, one key per table.
type RedisTableStore struct {
	rdclient *redis.Client
}

func NewRedisTableStore(redisAddr string, redisPW string, redisDB int) *RedisTableStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisTableStore{
		rdclient: rdclient,
	}
}

func tableKey(tableID string) string {
	return fmt.Sprintf("table|%s", tableID)
}

func (r *RedisTableStore) Fetch(ctx context.Context, tableID string) (*Snapshot, error) {
	data, err := r.rdclient.Get(ctx, tableKey(tableID)).Result()
	if err == redis.Nil {
		return nil, errors.Wrapf(ErrTableNotFound, "table %s", tableID)
	} else if err != nil {
		return nil, errors.Wrapf(err, "fetching snapshot for table %s", tableID)
	}

	snapshot := &Snapshot{}
	if err := jsoniter.Unmarshal([]byte(data), snapshot); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling snapshot for table %s", tableID)
	}
	return snapshot, nil
}

func (r *RedisTableStore) Save(ctx context.Context, snapshot *Snapshot) error {
	data, err := jsoniter.Marshal(snapshot)
	if err != nil {
		return errors.Wrapf(err, "marshaling snapshot for table %s", snapshot.Game.TableID)
	}
	return r.rdclient.Set(ctx, tableKey(snapshot.Game.TableID), data, 0).Err()
}

func (r *RedisTableStore) Remove(ctx context.Context, tableID string) error {
	return r.rdclient.Del(ctx, tableKey(tableID)).Err()
}
