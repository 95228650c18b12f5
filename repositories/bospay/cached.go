package bospay

import (
	// Go Internal Packages
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
	cache "bospay-gateway/repositories/cache"

	// External Packages
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// CachingClient decorates Client with a TTL response cache keyed by
// operation and parameters, and bounded retry for remote failures.
// Auth failures and locally rejected input are never retried; the raw
// fetchers below it still issue exactly one request per attempt.
type CachingClient struct {
	raw             *Client
	store           cache.Store
	orgTTL          time.Duration
	listTTL         time.Duration
	maxAttempts     int
	initialInterval time.Duration
	logger          *zap.Logger
}

type CacheConfig struct {
	Store           cache.Store // nil disables caching, retry still applies
	OrgTTL          time.Duration
	ListTTL         time.Duration
	MaxAttempts     int
	InitialInterval time.Duration
}

func NewCachingClient(raw *Client, conf CacheConfig, logger *zap.Logger) *CachingClient {
	if conf.MaxAttempts <= 0 {
		conf.MaxAttempts = 1
	}
	return &CachingClient{
		raw:             raw,
		store:           conf.Store,
		orgTTL:          conf.OrgTTL,
		listTTL:         conf.ListTTL,
		maxAttempts:     conf.MaxAttempts,
		initialInterval: conf.InitialInterval,
		logger:          logger,
	}
}

// tokenKey folds the bearer token into cache keys without storing it
// verbatim.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

func (c *CachingClient) withRetry(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	if c.initialInterval > 0 {
		bo.InitialInterval = c.initialInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxAttempts-1)), ctx)

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if errors.Is(errors.Unauthorized, err) || errors.Is(errors.Invalid, err) || errors.Is(errors.NotFound, err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// fetchCached serves from the store when possible, otherwise fetches
// with retry and populates the store on success.
func fetchCached[T any](ctx context.Context, c *CachingClient, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if c.store != nil {
		if raw, ok := c.store.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(raw, &v); err == nil {
				return v, nil
			}
			c.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
		}
	}

	var v T
	err := c.withRetry(ctx, func() error {
		var ferr error
		v, ferr = fetch()
		return ferr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if c.store != nil {
		if raw, err := json.Marshal(v); err == nil {
			c.store.Set(ctx, key, raw, ttl)
		}
	}
	return v, nil
}

func (c *CachingClient) ListConfirmedTransactions(ctx context.Context, token string) ([]models.ConfirmedTransaction, error) {
	key := "confirmed-transactions:" + tokenKey(token)
	return fetchCached(ctx, c, key, c.listTTL, func() ([]models.ConfirmedTransaction, error) {
		return c.raw.ListConfirmedTransactions(ctx, token)
	})
}

type cachedOrg struct {
	OrgID string `json:"orgId"`
}

func (c *CachingClient) ResolveOrganization(ctx context.Context, token string) (string, error) {
	// An empty org id is a valid resolution and is cached as well.
	key := "organization:" + tokenKey(token)
	org, err := fetchCached(ctx, c, key, c.orgTTL, func() (cachedOrg, error) {
		orgID, err := c.raw.ResolveOrganization(ctx, token)
		return cachedOrg{OrgID: orgID}, err
	})
	return org.OrgID, err
}

func (c *CachingClient) ListInvoiceRecords(ctx context.Context, token, orgID string, limit, skip int) ([]models.InvoiceRecord, error) {
	// Page bounds default the same way the raw client does, so one
	// upstream page never caches under two keys.
	if limit <= 0 {
		limit = DefaultInvoicePageSize
	}
	if skip < 0 {
		skip = 0
	}
	key := fmt.Sprintf("invoice-records:%s:%s:%d:%d", tokenKey(token), orgID, limit, skip)
	return fetchCached(ctx, c, key, c.listTTL, func() ([]models.InvoiceRecord, error) {
		return c.raw.ListInvoiceRecords(ctx, token, orgID, limit, skip)
	})
}

func (c *CachingClient) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	key := "products:" + tokenKey(token)
	return fetchCached(ctx, c, key, c.listTTL, func() ([]models.Product, error) {
		return c.raw.ListProducts(ctx, token)
	})
}

// Single-record lookups and the remaining reads skip the cache but keep
// the retry policy.

func (c *CachingClient) GetConfirmedTransaction(ctx context.Context, token, id string) (*models.ConfirmedTransaction, error) {
	var tx *models.ConfirmedTransaction
	err := c.withRetry(ctx, func() error {
		var ferr error
		tx, ferr = c.raw.GetConfirmedTransaction(ctx, token, id)
		return ferr
	})
	return tx, err
}

func (c *CachingClient) GetInvoiceRecord(ctx context.Context, token, id string) (*models.InvoiceRecord, error) {
	var record *models.InvoiceRecord
	err := c.withRetry(ctx, func() error {
		var ferr error
		record, ferr = c.raw.GetInvoiceRecord(ctx, token, id)
		return ferr
	})
	return record, err
}

func (c *CachingClient) GetBalance(ctx context.Context, token string) (*models.Balance, error) {
	var balance *models.Balance
	err := c.withRetry(ctx, func() error {
		var ferr error
		balance, ferr = c.raw.GetBalance(ctx, token)
		return ferr
	})
	return balance, err
}

func (c *CachingClient) ListStaff(ctx context.Context, token string) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := c.withRetry(ctx, func() error {
		var ferr error
		staff, ferr = c.raw.ListStaff(ctx, token)
		return ferr
	})
	return staff, err
}

// InviteStaff is a write and is never retried or cached.
func (c *CachingClient) InviteStaff(ctx context.Context, token string, invite models.StaffInvite) (*models.StaffMember, error) {
	return c.raw.InviteStaff(ctx, token, invite)
}
