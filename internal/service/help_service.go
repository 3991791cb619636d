package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
)

// helpPrompt frames every query for the upstream model; the platform serves
// deaf students learning STEM.
const helpPrompt = "I am a school student learning STEM. I am deaf, so I find it tough to learn and understand STEM. Please help me with my query: %s"

type upstreamLLM interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type helpCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type helpMetrics interface {
	ObserveUpstream(duration time.Duration, success bool)
	HelpCacheHit()
	HelpCacheMiss()
}

// HelpService proxies free-text STEM questions to the upstream LLM, caching
// answers so identical queries do not pay for a second generation.
type HelpService struct {
	llm      upstreamLLM
	cache    helpCache
	metrics  helpMetrics
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewHelpService constructs a HelpService instance.
func NewHelpService(llm upstreamLLM, cache helpCache, metrics helpMetrics, cacheTTL time.Duration, logger *zap.Logger) *HelpService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HelpService{llm: llm, cache: cache, metrics: metrics, cacheTTL: cacheTTL, logger: logger}
}

// Ask answers a free-text query via the upstream LLM.
func (s *HelpService) Ask(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "query is required and must be a string.")
	}

	key := helpCacheKey(query)
	if s.cache != nil {
		var cached string
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.HelpCacheHit()
			}
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.HelpCacheMiss()
		}
	}

	start := time.Now()
	answer, err := s.llm.GenerateContent(ctx, fmt.Sprintf(helpPrompt, query))
	if s.metrics != nil {
		s.metrics.ObserveUpstream(time.Since(start), err == nil)
	}
	if err != nil {
		s.logger.Error("llm upstream call failed", zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, answer, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache help answer", zap.Error(err))
		}
	}

	return answer, nil
}

func helpCacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "help:" + hex.EncodeToString(sum[:])
}
