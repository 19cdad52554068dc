package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"news-server/models"
)

// NewsService fetches one page of articles at a time from the external news
// provider. Provider failures never propagate to callers; the result degrades
// to an empty list. Pages are cached in Redis when a client is available.
type NewsService struct {
	client   *http.Client
	cache    *redis.Client
	logger   *zap.SugaredLogger
	baseURL  string
	apiKey   string
	pageSize int
	cacheTTL time.Duration
}

func NewNewsService(cache *redis.Client, logger *zap.SugaredLogger, baseURL, apiKey string, pageSize int, cacheTTL time.Duration) *NewsService {
	return &NewsService{
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cache,
		logger:   logger,
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		cacheTTL: cacheTTL,
	}
}

// Search returns the given result page for a free-text query. An empty query
// means trending/default results.
func (s *NewsService) Search(ctx context.Context, query string, page int) []models.Article {
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("news:%s:%d", query, page)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cached), &articles); err == nil {
				return articles
			}
			s.logger.Warnf("Dropping unreadable news cache entry %s", cacheKey)
		}
	}

	articles, err := s.fetch(ctx, query, page)
	if err != nil {
		s.logger.Warnf("News lookup failed for query %q page %d: %v", query, page, err)
		return []models.Article{}
	}

	if s.cache != nil {
		if data, err := json.Marshal(articles); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warnf("Failed to cache news page %s: %v", cacheKey, err)
			}
		}
	}

	return articles
}

func (s *NewsService) fetch(ctx context.Context, query string, page int) ([]models.Article, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(s.pageSize))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}

	var body struct {
		Articles []models.Article `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Articles == nil {
		body.Articles = []models.Article{}
	}
	return body.Articles, nil
}
