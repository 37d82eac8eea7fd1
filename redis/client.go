package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
)

type DB int
type ReleaseLock func() error

type Client struct {
	client         redis.UniversalClient
	lockExpiration time.Duration
}

var ctx = context.Background()

type Config struct {
	LockExpirationSeconds   int     `envconfig:"POSTAG_COMN_REDIS_LOCK_EXPIRATION" default:"3"`
	Host                    string  `envconfig:"POSTAG_COMN_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"POSTAG_COMN_REDIS_PORT" required:"true"`
	HASentinelPort          string  `envconfig:"POSTAG_COMN_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"POSTAG_COMN_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"POSTAG_COMN_REDIS_AUTH_PASSWORD" default:"0"`
	AuthRequired            bool    `envconfig:"POSTAG_COMN_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"POSTAG_COMN_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"POSTAG_COMN_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

func NewClient(db DB) (Client, error) {
	cfg, err := readEnvironment()
	if err != nil {
		return Client{}, err
	}
	var client redis.UniversalClient
	if cfg.HAMode {
		client = CreateClusterClient(cfg, db)
	} else {
		client = CreateClient(cfg, db)
	}
	return Client{
		client:         client,
		lockExpiration: time.Duration(cfg.LockExpirationSeconds) * time.Second,
	}, nil
}

func CreateClusterClient(cfg *Config, db DB) *redis.ClusterClient {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)
	timeout := time.Duration(cfg.HASentinelSocketTimeout) * time.Second
	options := redis.FailoverOptions{
		SentinelAddrs: []string{addr},
		ReadTimeout:   timeout,
		WriteTimeout:  timeout,
		MaxRetries:    6,
		DB:            int(db),
		MasterName:    cfg.HASentinelMasterName,
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewFailoverClusterClient(&options)
}

func CreateClient(cfg *Config, db DB) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	options := redis.Options{
		Addr:       addr,
		MaxRetries: 6,
		DB:         int(db),
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewClient(&options)
}

// GetDocument unmarshals the stored JSON document into doc.
func (client *Client) GetDocument(redisKey string, doc interface{}) error {
	response := client.client.Get(ctx, redisKey)
	if response.Err() != nil {
		return response.Err()
	}
	b, err := response.Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, doc)
}

// UpdateDocument applies updateFunc to the stored document under a lock.
// Other services write their own fields into the same document, so only the
// fields updateFunc changed are written back: the diff of doc before/after
// becomes a JSON merge patch applied to the raw stored bytes.
func (client *Client) UpdateDocument(redisKey string, doc interface{}, updateFunc func()) (err error) {
	releaseLock, err := client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		releaseErr := releaseLock()
		if err == nil {
			err = releaseErr
		}
	}()

	response := client.client.Get(ctx, redisKey)
	if response.Err() != nil {
		return response.Err()
	}
	raw, err := response.Bytes()
	if err != nil {
		return err
	}
	merged, err := mergeUpdate(raw, doc, updateFunc)
	if err != nil {
		return err
	}

	return client.client.Set(ctx, redisKey, merged, 0).Err()
}

// mergeUpdate unmarshals raw into doc, runs updateFunc, and folds only the
// changed fields back into raw as a JSON merge patch. Fields of the stored
// document that doc does not model survive untouched.
func mergeUpdate(raw []byte, doc interface{}, updateFunc func()) ([]byte, error) {
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	before, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	updateFunc()

	after, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(raw, patch)
}

func (client *Client) Lock(redisKey string) (ReleaseLock, error) {
	lockCl := redislock.New(client.client)
	str := redislock.LimitRetry(redislock.LinearBackoff(time.Second), 20)
	lockKey := fmt.Sprintf("lock:%s", redisKey)
	lock, err := lockCl.Obtain(ctx, lockKey, client.lockExpiration, &redislock.Options{RetryStrategy: str})
	if err != nil {
		return nil, err
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

func (client *Client) SaveDocument(redisKey string, doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return client.client.Set(ctx, redisKey, b, 0).Err()
}

func (client *Client) Close() error {
	return client.client.Close()
}

func readEnvironment() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
