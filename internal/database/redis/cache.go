package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ds124wfegd/travelbooker/internal/entity"

	"github.com/redis/go-redis/v9"
)

// Cache хранит горячие сущности каталога, чтобы разгрузить postgres.
// Реализация может отсутствовать (redis выключен) — тогда используется noop.
type Cache interface {
	SetDestination(destination *entity.Destination) error
	GetDestination(id int64) (*entity.Destination, error)
	DeleteDestination(id int64) error

	SetPackage(pkg *entity.PackageWithDestination) error
	GetPackage(id int64) (*entity.PackageWithDestination, error)
	DeletePackage(id int64) error

	SetSummary(summary *entity.HomeSummary) error
	GetSummary() (*entity.HomeSummary, error)
	DeleteSummary() error
}

type CacheRepository struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewCacheRepository(client *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func (r *CacheRepository) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, data, r.ttl).Err()
}

func (r *CacheRepository) get(key string, dest any) error {
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func destinationKey(id int64) string { return fmt.Sprintf("destination:%d", id) }
func packageKey(id int64) string     { return fmt.Sprintf("package:%d", id) }

const summaryKey = "home:summary"

func (r *CacheRepository) SetDestination(destination *entity.Destination) error {
	return r.set(destinationKey(destination.ID), destination)
}

func (r *CacheRepository) GetDestination(id int64) (*entity.Destination, error) {
	var destination entity.Destination
	if err := r.get(destinationKey(id), &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *CacheRepository) DeleteDestination(id int64) error {
	return r.client.Del(r.ctx, destinationKey(id)).Err()
}

func (r *CacheRepository) SetPackage(pkg *entity.PackageWithDestination) error {
	return r.set(packageKey(pkg.ID), pkg)
}

func (r *CacheRepository) GetPackage(id int64) (*entity.PackageWithDestination, error) {
	var pkg entity.PackageWithDestination
	if err := r.get(packageKey(id), &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *CacheRepository) DeletePackage(id int64) error {
	return r.client.Del(r.ctx, packageKey(id)).Err()
}

func (r *CacheRepository) SetSummary(summary *entity.HomeSummary) error {
	return r.set(summaryKey, summary)
}

func (r *CacheRepository) GetSummary() (*entity.HomeSummary, error) {
	var summary entity.HomeSummary
	if err := r.get(summaryKey, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *CacheRepository) DeleteSummary() error {
	return r.client.Del(r.ctx, summaryKey).Err()
}

// NoopCache применяется, когда redis отключён в конфигурации
type NoopCache struct{}

var errCacheDisabled = redis.Nil

func (NoopCache) SetDestination(*entity.Destination) error { return nil }
func (NoopCache) GetDestination(int64) (*entity.Destination, error) {
	return nil, errCacheDisabled
}
func (NoopCache) DeleteDestination(int64) error { return nil }

func (NoopCache) SetPackage(*entity.PackageWithDestination) error { return nil }
func (NoopCache) GetPackage(int64) (*entity.PackageWithDestination, error) {
	return nil, errCacheDisabled
}
func (NoopCache) DeletePackage(int64) error { return nil }

func (NoopCache) SetSummary(*entity.HomeSummary) error { return nil }
func (NoopCache) GetSummary() (*entity.HomeSummary, error) {
	return nil, errCacheDisabled
}
func (NoopCache) DeleteSummary() error { return nil }
