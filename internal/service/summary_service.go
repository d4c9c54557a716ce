package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"record-registry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const summaryTTL = 24 * time.Hour

// SummaryService keeps best-effort per-kind append counters for the current
// session in Redis. Failures are logged and never abort the append.
type SummaryService interface {
	RecordAppended(ctx context.Context, sessionID uuid.UUID, kind entity.Kind)
	SessionCounts(ctx context.Context, sessionID uuid.UUID) (map[string]int64, error)
}

type summaryService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSummaryService(redisClient *redis.Client, log *logrus.Logger) SummaryService {
	return &summaryService{
		redisClient: redisClient,
		log:         log,
	}
}

func summaryKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s:counts", sessionID)
}

func (s *summaryService) RecordAppended(ctx context.Context, sessionID uuid.UUID, kind entity.Kind) {
	if s.redisClient == nil {
		return
	}

	key := summaryKey(sessionID)
	if err := s.redisClient.HIncrBy(ctx, key, string(kind), 1).Err(); err != nil {
		s.log.Warnf("Failed to update session summary: %+v", err)
		return
	}
	if err := s.redisClient.Expire(ctx, key, summaryTTL).Err(); err != nil {
		s.log.Warnf("Failed to refresh session summary TTL: %+v", err)
	}
}

func (s *summaryService) SessionCounts(ctx context.Context, sessionID uuid.UUID) (map[string]int64, error) {
	if s.redisClient == nil {
		return map[string]int64{}, nil
	}

	raw, err := s.redisClient.HGetAll(ctx, summaryKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(raw))
	for kind, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		counts[kind] = n
	}
	return counts, nil
}
