package warband

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
	redisclient "github.com/KirkDiggler/warband-api/internal/redis"
)

const (
	warbandKeyPrefix = "warband:"
	warbandIDsKey    = "warband:ids"
	warbandNamesKey  = "warband:names"

	// Error messages
	errWarbandIDEmpty = "warband ID cannot be empty"
	errWarbandNil     = "warband cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis warband repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed warband repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Warband == nil {
		return nil, errors.InvalidArgument(errWarbandNil)
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	key := warbandKeyPrefix + input.Warband.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check warband existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("warband %s already exists", input.Warband.ID)
	}

	if err := r.write(ctx, input.Warband); err != nil {
		return nil, err
	}

	return &CreateOutput{Warband: input.Warband}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	result, err := r.client.Get(ctx, warbandKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("warband %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get warband %s", input.ID)
	}

	var wb weirdos.Warband
	if err := json.Unmarshal([]byte(result), &wb); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal warband %s", input.ID)
	}

	return &GetOutput{Warband: &wb}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Warband == nil {
		return nil, errors.InvalidArgument(errWarbandNil)
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	exists, err := r.client.Exists(ctx, warbandKeyPrefix+input.Warband.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check warband existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("warband %s not found", input.Warband.ID)
	}

	if err := r.write(ctx, input.Warband); err != nil {
		return nil, err
	}

	return &UpdateOutput{Warband: input.Warband}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWarbandIDEmpty)
	}

	exists, err := r.client.Exists(ctx, warbandKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check warband existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("warband %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, warbandKeyPrefix+input.ID)
	pipe.SRem(ctx, warbandIDsKey, input.ID)
	pipe.HDel(ctx, warbandNamesKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete warband %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, warbandIDsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list warband IDs")
	}

	warbands := make([]*weirdos.Warband, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// The ID set and the blobs are written together; a dangling
			// ID means something external touched the keys.
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		warbands = append(warbands, out.Warband)
	}

	return &ListOutput{Warbands: warbands}, nil
}

func (r *redisRepository) ListNames(ctx context.Context, _ ListNamesInput) (*ListNamesOutput, error) {
	byID, err := r.client.HGetAll(ctx, warbandNamesKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list warband names")
	}

	names := make([]string, 0, len(byID))
	for _, name := range byID {
		names = append(names, name)
	}

	return &ListNamesOutput{Names: names}, nil
}

// write stores the warband blob and its index entries atomically.
func (r *redisRepository) write(ctx context.Context, wb *weirdos.Warband) error {
	data, err := json.Marshal(wb)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal warband %s", wb.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, warbandKeyPrefix+wb.ID, data, 0)
	pipe.SAdd(ctx, warbandIDsKey, wb.ID)
	pipe.HSet(ctx, warbandNamesKey, wb.ID, wb.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store warband %s", wb.ID)
	}
	return nil
}

// GetKey returns the Redis key for a warband
// Exposed for testing purposes
func GetKey(id string) string {
	return warbandKeyPrefix + id
}
