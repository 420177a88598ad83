// Package redis implements the store gateways over Redis: JSON values
// under per-kind key prefixes, sets as secondary indexes, and SCAN for
// filtered catalog searches.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/loudent/library/internal/infrastructure/config"
)

// Key layout. Secondary indexes are sets of bookIds maintained alongside
// the primary activity record.
const (
	catalogKeyPrefix  = "catalog:"
	accountKeyPrefix  = "account:"
	activityKeyPrefix = "activity:"
	isbnIndexPrefix   = "activity:isbn:"
	acctIndexPrefix   = "activity:account:"
)

// NewClient connects to Redis with the configured pool and timeouts and
// verifies the connection.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return client, nil
}

func catalogKey(isbn string) string            { return catalogKeyPrefix + isbn }
func accountKey(accountNumber string) string   { return accountKeyPrefix + accountNumber }
func activityKey(bookID string) string         { return activityKeyPrefix + bookID }
func isbnIndexKey(isbn string) string          { return isbnIndexPrefix + isbn }
func acctIndexKey(accountNumber string) string { return acctIndexPrefix + accountNumber }
