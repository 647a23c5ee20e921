package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	tallyKey        = "results:tally"
	recentKey       = "results:recent"

	recentLimit = 100

	fieldCrossWins  = "cross_wins"
	fieldNoughtWins = "nought_wins"
	fieldDraws      = "draws"
)

var ErrResultNotFound = fmt.Errorf("result %w", apperror.ErrNotFound)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, gameID string) (*entity.Result, error)
	Recent(ctx context.Context, limit int) ([]*entity.Result, error)
	Tally(ctx context.Context) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and counts it in the tally in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	field, err := tallyField(result)
	if err != nil {
		return err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.Set(ctx, resultKeyPrefix+result.GameID, resultJSON, 0)
	pipe.HIncrBy(ctx, tallyKey, field, 1)
	pipe.LPush(ctx, recentKey, result.GameID)
	pipe.LTrim(ctx, recentKey, 0, recentLimit-1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, gameID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+gameID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Recent - returns up to limit results, newest first.
func (that *dbResult) Recent(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, resultKeyPrefix+id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*entity.Result, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var result entity.Result
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) Tally(ctx context.Context) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	var tally entity.Tally
	counters := map[string]*int64{
		fieldCrossWins:  &tally.CrossWins,
		fieldNoughtWins: &tally.NoughtWins,
		fieldDraws:      &tally.Draws,
	}

	for field, counter := range counters {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *counter, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse tally field %s: %w", field, err)
		}
	}

	return &tally, nil
}

func tallyField(result *entity.Result) (string, error) {
	if result.GameID == "" {
		return "", fmt.Errorf("%w: empty game id", apperror.ErrInvalidResult)
	}

	switch result.State {
	case entity.StateCrossWon:
		return fieldCrossWins, nil
	case entity.StateNoughtWon:
		return fieldNoughtWins, nil
	case entity.StateDraw:
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: state %s", apperror.ErrInvalidResult, result.State)
	}
}
