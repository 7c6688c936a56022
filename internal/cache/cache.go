package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gapscan/gapscan/internal/models"
)

const reportKeyPrefix = "gapscan:report:"

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache stores finished reports keyed by document content and request
// parameters. The engine is deterministic, so a hit is always exact.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Cache{client: client, ttl: cfg.TTL}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Key derives the cache key for an analysis request.
func Key(text string, frameworks []string, industry string, pdfSource bool) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(frameworks, ",")))
	h.Write([]byte{0})
	h.Write([]byte(industry))
	if pdfSource {
		h.Write([]byte{1})
	}
	return reportKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// GetReport returns a cached report, or nil on a miss. Transport
// errors are returned so callers can log and fall through.
func (c *Cache) GetReport(ctx context.Context, key string) (*models.Report, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding cached report: %w", err)
	}
	return &report, nil
}

func (c *Cache) SetReport(ctx context.Context, key string, report *models.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
