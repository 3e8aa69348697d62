package cron

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"quickserve/config"
	"quickserve/services/pricing"
	"quickserve/services/tasks"
	"quickserve/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// refreshInterval is how often recently-priced pairs get their snapshot
// refreshed.
const refreshInterval = 10 * time.Minute

// InitSnapshotWorker runs the async snapshot refresher in background: an
// asynq server consuming refresh tasks, plus a ticker that enqueues one task
// per recently-priced (pincode, category) pair.
func InitSnapshotWorker(engine *pricing.DefaultPricingEngine, marketCache *redis.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMarketSnapshot, handleSnapshotTask(engine))

	go func() {
		log.Println("[SnapshotWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[SnapshotWorker] worker stopped: %v", err)
		}
	}()

	go enqueueLoop(asynq.NewClient(redisOpts), marketCache)
}

func handleSnapshotTask(engine *pricing.DefaultPricingEngine) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.SnapshotPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return engine.RefreshSnapshot(ctx, payload.Pincode, payload.Category)
	}
}

// enqueueLoop periodically walks the seen-pairs set and enqueues a refresh
// task per pair.
func enqueueLoop(client *asynq.Client, marketCache *redis.Client) {
	logger := utils.GetLogger()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for range ticker.C {
		ctx := context.Background()
		pairs, err := marketCache.SMembers(ctx, utils.MarketPairsKey).Result()
		if err != nil {
			logger.Warn("snapshot worker: failed to list pairs", zap.Error(err))
			continue
		}
		for _, pair := range pairs {
			parts := strings.SplitN(pair, "|", 2)
			if len(parts) != 2 {
				continue
			}
			task, err := tasks.NewSnapshotTask(tasks.SnapshotPayload{Pincode: parts[0], Category: parts[1]})
			if err != nil {
				continue
			}
			if _, err := client.Enqueue(task); err != nil {
				logger.Warn("snapshot worker: enqueue failed", zap.String("pair", pair), zap.Error(err))
			}
		}
	}
}
