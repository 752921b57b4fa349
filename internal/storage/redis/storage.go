package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Form session operations

func (s *Storage) SaveForm(ctx context.Context, form *model.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, formKey(form.ID), data, s.cfg.FormTTL).Err()
}

func (s *Storage) GetForm(ctx context.Context, id model.FormID) (*model.Form, error) {
	data, err := s.client.Get(ctx, formKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrFormNotFound
		}
		return nil, err
	}

	var form model.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *Storage) DeleteForm(ctx context.Context, id model.FormID) error {
	return s.client.Del(ctx, formKey(id)).Err()
}

// Registration record operations

func (s *Storage) SaveRecord(ctx context.Context, record *model.IdentityRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Records are durable: no TTL. A write failure must surface to the
	// caller as a submission failure, so no best-effort fallbacks here.
	if err := s.client.Set(ctx, recordKey(record.StudentNumber), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrPersistenceFailed, err)
	}
	return nil
}

func (s *Storage) GetRecord(ctx context.Context, studentNumber string) (*model.IdentityRecord, error) {
	data, err := s.client.Get(ctx, recordKey(studentNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRecordNotFound
		}
		return nil, err
	}

	var record model.IdentityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
