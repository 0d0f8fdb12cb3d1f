package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gobridgeflow/types"

	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"
)

// Store keeps user profiles. Writes are best-effort: callers treat every
// error as non-fatal.
type Store struct {
	pool *redis.Pool
	ttl  int
}

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

// New creates a pooled store; no connection is made until first use
func New(host string, port int, ttlSeconds int) *Store {
	redisAddr := fmt.Sprintf("%s:%d", host, port)
	return &Store{
		pool: &redis.Pool{
			MaxIdle:     5,
			IdleTimeout: 240 * time.Second,
			Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
		},
		ttl: ttlSeconds,
	}
}

func ProfileKey(id string) string {
	return fmt.Sprintf("devsuite-user:%s", id)
}

func (s *Store) Ping() error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	return err
}

func (s *Store) SaveUserProfile(p *types.UserProfile) error {
	if p == nil {
		return errors.New("null object to store")
	}
	if p.ID == "" {
		return errors.New("user profile cannot have empty id")
	}

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cannot marshal user profile to JSON: %w", err)
	}

	conn := s.pool.Get()
	defer conn.Close()

	_, err = conn.Do("SETEX", ProfileKey(p.ID), s.ttl, profileJSON)
	if err != nil {
		log.WithField("user", p.ID).Errorf("error Redis SETEX: %s", err)
		return err
	}
	return nil
}

// GetUserProfile returns nil, nil when the profile is absent or expired
func (s *Store) GetUserProfile(id string) (*types.UserProfile, error) {
	conn := s.pool.Get()
	defer conn.Close()

	profileJSON, err := redis.Bytes(conn.Do("GET", ProfileKey(id)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		log.WithField("user", id).Errorf("error Redis GET: %s", err)
		return nil, err
	}

	var profile types.UserProfile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("cannot unmarshal user profile: %w", err)
	}
	return &profile, nil
}

func (s *Store) Close() error {
	return s.pool.Close()
}
