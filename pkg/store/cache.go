// Package store holds run configuration and the on-disk cache of fetched
// Garmin payloads.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
)

// Cache persists one JSON document per (resource, date) so a day's sync can
// be replayed without hitting the API.
type Cache struct {
	d *diskv.Diskv
}

// OpenCache returns a Cache rooted at basePath, expanding a leading ~.
func OpenCache(basePath string) (*Cache, error) {
	expanded, err := homedir.Expand(basePath)
	if err != nil {
		return nil, err
	}
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     expanded,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func sleepKey(date string) string      { return "sleep-" + date }
func activitiesKey(date string) string { return "activities-" + date }

func (c *Cache) write(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err == nil {
		err = c.d.Write(key, data)
	}
	if err != nil {
		// Cache writes are best effort; the sync still has the data.
		fmt.Fprintf(os.Stderr, "cache %s: %s\n", key, err)
	}
}

func (c *Cache) read(key string, target interface{}) error {
	data, err := c.d.Read(key)
	if err != nil {
		return fmt.Errorf("no cached data for %s: %w", key, err)
	}
	return json.Unmarshal(data, target)
}

// NewCachingService wraps next so every successful fetch is written through
// to the cache.
func NewCachingService(next garmin.Service, cache *Cache) garmin.Service {
	return &cachingService{next: next, cache: cache}
}

type cachingService struct {
	next  garmin.Service
	cache *Cache
}

func (s *cachingService) SleepData(ctx context.Context, date string) (garmin.DailySleep, error) {
	sleep, err := s.next.SleepData(ctx, date)
	if err != nil {
		return garmin.DailySleep{}, err
	}
	s.cache.write(sleepKey(date), sleep)
	return sleep, nil
}

func (s *cachingService) Activities(ctx context.Context, date string) ([]garmin.Activity, error) {
	activities, err := s.next.Activities(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cache.write(activitiesKey(date), activities)
	return activities, nil
}

// NewOfflineService serves fetches from the cache only. A date that was
// never synced online is an error.
func NewOfflineService(cache *Cache) garmin.Service {
	return &offlineService{cache: cache}
}

type offlineService struct {
	cache *Cache
}

func (s *offlineService) SleepData(_ context.Context, date string) (garmin.DailySleep, error) {
	var sleep garmin.DailySleep
	if err := s.cache.read(sleepKey(date), &sleep); err != nil {
		return garmin.DailySleep{}, err
	}
	return sleep, nil
}

func (s *offlineService) Activities(_ context.Context, date string) ([]garmin.Activity, error) {
	var activities []garmin.Activity
	if err := s.cache.read(activitiesKey(date), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
