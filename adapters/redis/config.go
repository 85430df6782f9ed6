package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the Redis-backed Store.
type Config struct {
	Addr         string
	DB           int
	Password     string
	Username     string
	Prefix       string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// Store is a Redis-backed implementation of registry.Store. Rosters live in
// Redis so several replicas can share one registry; mutations run as Lua
// scripts so the existence/duplicate/capacity checks are atomic server-side.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
	// cached SHAs for the roster mutation scripts
	signupSHA     string
	unregisterSHA string
	// ownsClient determines whether Close() should close the underlying client
	ownsClient bool
}

// New creates a new Redis Store with the provided configuration.
func New(cfg Config) (*Store, error) {
	opts := &redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "activities"
	}
	s := &Store{rdb: rdb, prefix: prefix, ownsClient: true}
	s.loadScripts(ctx)
	return s, nil
}

// NewFromClient constructs a Store from a user-managed redis.UniversalClient.
// The Store will not Close() the client.
func NewFromClient(ctx context.Context, rdb redis.UniversalClient, prefix string) (*Store, error) {
	if prefix == "" {
		prefix = "activities"
	}
	// Verify the connection works
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	s := &Store{rdb: rdb, prefix: prefix, ownsClient: false}
	s.loadScripts(ctx)
	return s, nil
}

// loadScripts caches script SHAs; best-effort, EVAL is the fallback.
func (s *Store) loadScripts(ctx context.Context) {
	if sha, err := s.rdb.ScriptLoad(ctx, luaSignup).Result(); err == nil {
		s.signupSHA = sha
	}
	if sha, err := s.rdb.ScriptLoad(ctx, luaUnregister).Result(); err == nil {
		s.unregisterSHA = sha
	}
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	if s.ownsClient {
		return s.rdb.Close()
	}
	return nil
}
