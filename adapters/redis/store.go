package redisstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/mergington-hs/activities/registry"
)

// Ensure Store implements registry.Store
var _ registry.Store = (*Store)(nil)

// Script return codes shared by the Lua mutations.
const (
	codeActivityMissing = -1
	codeDuplicate       = -2
	codeFull            = -3
)

// ---------- Key helpers ----------

func (s *Store) namesKey() string { return fmt.Sprintf("%s:names", s.prefix) }
func (s *Store) metaKey(name string) string {
	return fmt.Sprintf("%s:act:%s:meta", s.prefix, name)
}
func (s *Store) rosterKey(name string) string {
	return fmt.Sprintf("%s:act:%s:roster", s.prefix, name)
}

// ---------- Seeding ----------

// Seed writes the catalog into Redis. Activities that already exist keep
// their current roster; seeding is only performed for absent names, so a
// restart never resets live rosters.
func (s *Store) Seed(ctx context.Context, catalog map[string]*registry.Activity) error {
	for name, act := range catalog {
		exists, err := s.rdb.Exists(ctx, s.metaKey(name)).Result()
		if err != nil {
			return fmt.Errorf("redis exists %s: %w", name, err)
		}
		if exists > 0 {
			continue
		}
		pipe := s.rdb.Pipeline()
		pipe.HSet(ctx, s.metaKey(name),
			"description", act.Description,
			"schedule", act.Schedule,
			"max_participants", act.MaxParticipants,
		)
		if len(act.Participants) > 0 {
			members := make([]interface{}, len(act.Participants))
			for i, p := range act.Participants {
				members[i] = p
			}
			pipe.RPush(ctx, s.rosterKey(name), members...)
		}
		pipe.SAdd(ctx, s.namesKey(), name)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("redis pipeline seed %s: %w", name, err)
		}
	}
	return nil
}

// ---------- Reads ----------

// List implements registry.Store
func (s *Store) List(ctx context.Context) (map[string]*registry.Activity, error) {
	names, err := s.rdb.SMembers(ctx, s.namesKey()).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis smembers names: %w", err)
	}

	result := make(map[string]*registry.Activity, len(names))
	for _, name := range names {
		act, err := s.Get(ctx, name)
		if err != nil {
			// name set and meta hash can drift if keys expire externally
			continue
		}
		result[name] = act
	}
	return result, nil
}

// Get implements registry.Store
func (s *Store) Get(ctx context.Context, name string) (*registry.Activity, error) {
	meta, err := s.rdb.HGetAll(ctx, s.metaKey(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall meta: %w", err)
	}
	if len(meta) == 0 {
		return nil, registry.ErrActivityNotFound
	}

	max, err := strconv.Atoi(meta["max_participants"])
	if err != nil {
		return nil, fmt.Errorf("parse max_participants for %s: %w", name, err)
	}

	roster, err := s.rdb.LRange(ctx, s.rosterKey(name), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis lrange roster: %w", err)
	}
	if roster == nil {
		roster = []string{}
	}

	return &registry.Activity{
		Description:     meta["description"],
		Schedule:        meta["schedule"],
		MaxParticipants: max,
		Participants:    roster,
	}, nil
}

// ---------- Mutations ----------

// Signup implements registry.Store
func (s *Store) Signup(ctx context.Context, name, email string) error {
	code, err := s.evalMutation(ctx, s.signupSHA, luaSignup, name, email)
	if err != nil {
		return fmt.Errorf("redis eval signup: %w", err)
	}
	switch code {
	case codeActivityMissing:
		return registry.ErrActivityNotFound
	case codeDuplicate:
		return registry.ErrAlreadySignedUp
	case codeFull:
		return registry.ErrActivityFull
	}
	return nil
}

// Unregister implements registry.Store
func (s *Store) Unregister(ctx context.Context, name, email string) error {
	code, err := s.evalMutation(ctx, s.unregisterSHA, luaUnregister, name, email)
	if err != nil {
		return fmt.Errorf("redis eval unregister: %w", err)
	}
	switch code {
	case codeActivityMissing:
		return registry.ErrActivityNotFound
	case codeDuplicate:
		return registry.ErrParticipantNotFound
	}
	return nil
}

// evalMutation runs a roster script, preferring the cached SHA.
func (s *Store) evalMutation(ctx context.Context, sha, script, name, email string) (int, error) {
	keys := []string{s.metaKey(name), s.rosterKey(name)}

	if sha != "" {
		if res, err := s.rdb.EvalSha(ctx, sha, keys, email).Int(); err == nil {
			return res, nil
		}
		// NOSCRIPT or other error; fall through to EVAL
	}
	return s.rdb.Eval(ctx, script, keys, email).Int()
}
