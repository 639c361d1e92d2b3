/*
Package redisstore provides a store for the rendered outlines of grown trees
backed by a redis DB, so that they can be looked at from other hosts.
*/
package redisstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/redis.v5"
)

/*
Store keeps tree outlines on a redis DB under keys made of a prefix and a
name.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store backed by the given redis client
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
Dial takes a redis URL of the form redis://[:password@]host[:port][/db],
connects to it and returns a client for it or an error.
*/
func Dial(rawurl string) (*redis.Client, error) {
	opts, err := parseURL(rawurl)
	if err != nil {
		return nil, err
	}
	rc := redis.NewClient(opts)
	err = rc.Ping().Err()
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", opts.Addr, err)
	}
	return rc, nil
}

/*
Store takes a name and a tree outline and stores the outline under the
name, replacing any previous one. If the name is empty a random one is
generated. It returns the name used.
*/
func (s *Store) Store(ctx context.Context, name, outline string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		name = randString(20)
	}
	_, err := s.rc.Set(s.keyFor(name), outline, 0).Result()
	if err != nil {
		return "", fmt.Errorf("storing tree %q in redis: %v", name, err)
	}
	return name, nil
}

/*
Get takes a name and returns the outline stored under it, an empty string
if there is none, or an error if redis cannot be queried.
*/
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	outline, err := s.rc.Get(s.keyFor(name)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("retrieving tree %q: %v", name, err)
	}
	return outline, nil
}

// Delete removes the outline stored under the given name, if any.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.rc.Del(s.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", name, err)
	}
	return nil
}

func (s *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", s.prefix, name)
}

func parseURL(rawurl string) (*redis.Options, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %v", err)
	}
	if u.Scheme != "redis" {
		return nil, fmt.Errorf("parsing redis url: invalid scheme %q", u.Scheme)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Hostname() + ":6379"
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: invalid db %q: %v", db, err)
		}
	}
	return opts, nil
}
