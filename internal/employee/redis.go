package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores each employee as a JSON document. A sorted set scored by id keeps
// List in id order and an INCR counter hands out ids.
type RedisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository namespaces every key under prefix.
func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "employees"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) seqKey() string   { return r.prefix + ":seq" }
func (r *RedisRepository) indexKey() string { return r.prefix + ":index" }

func (r *RedisRepository) docKey(id int64) string {
	return r.prefix + ":employee:" + strconv.FormatInt(id, 10)
}

func (r *RedisRepository) List(ctx context.Context) ([]Employee, error) {
	members, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("employee: list index: %w", err)
	}
	employees := make([]Employee, 0, len(members))
	if len(members) == 0 {
		return employees, nil
	}

	keys := make([]string, 0, len(members))
	for _, member := range members {
		keys = append(keys, r.prefix+":employee:"+member)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("employee: list documents: %w", err)
	}
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Document removed between ZRANGE and MGET.
			continue
		}
		var e Employee
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("employee: decode document: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *RedisRepository) Get(ctx context.Context, id int64) (Employee, bool, error) {
	raw, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Employee{}, false, nil
	}
	if err != nil {
		return Employee{}, false, fmt.Errorf("employee: get %d: %w", id, err)
	}
	var e Employee
	if err := json.Unmarshal(raw, &e); err != nil {
		return Employee{}, false, fmt.Errorf("employee: decode %d: %w", id, err)
	}
	return e, true, nil
}

func (r *RedisRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return Employee{}, fmt.Errorf("employee: next id: %w", err)
	}
	e.ID = id
	doc, err := json.Marshal(e)
	if err != nil {
		return Employee{}, fmt.Errorf("employee: encode: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(id), doc, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: float64(id), Member: strconv.FormatInt(id, 10)})
		return nil
	})
	if err != nil {
		return Employee{}, fmt.Errorf("employee: create: %w", err)
	}
	return e, nil
}

func (r *RedisRepository) Update(ctx context.Context, e Employee) (Employee, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return Employee{}, fmt.Errorf("employee: encode: %w", err)
	}
	updated, err := r.client.SetXX(ctx, r.docKey(e.ID), doc, 0).Result()
	if err != nil {
		return Employee{}, fmt.Errorf("employee: update %d: %w", e.ID, err)
	}
	if !updated {
		return Employee{}, &NotFoundError{ID: e.ID}
	}
	return e, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id int64) error {
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.Del(ctx, r.docKey(id))
		pipe.ZRem(ctx, r.indexKey(), strconv.FormatInt(id, 10))
		return nil
	})
	if err != nil {
		return fmt.Errorf("employee: delete %d: %w", id, err)
	}
	if removed.Val() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
