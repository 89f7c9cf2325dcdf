package repo

import (
	"context"
	"errors"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/redis/go-redis/v9"
)

// redisProjectRepo stores the whole collection as one JSON document under a
// single key, keeping the file backend's read-modify-write semantics.
type redisProjectRepo struct {
	rdb *redis.Client
	key string
}

func NewRedisProjectRepo(rdb *redis.Client, key string) ProjectRepo {
	return &redisProjectRepo{rdb: rdb, key: key}
}

func (r *redisProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Project{}, nil
		}
		return nil, apperr.IO("read project store", err)
	}
	return decodeProjects(raw)
}

func (r *redisProjectRepo) Upsert(ctx context.Context, p *model.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, upsertInto(projects, p))
}

func (r *redisProjectRepo) Delete(ctx context.Context, name string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	projects, found := removeFrom(projects, name)
	if !found {
		return nil
	}
	return r.save(ctx, projects)
}

func (r *redisProjectRepo) save(ctx context.Context, projects []model.Project) error {
	b, err := encodeProjects(projects)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.key, b, 0).Err(); err != nil {
		return apperr.IO("write project store", err)
	}
	return nil
}
