package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"socialvid-go/internal/config"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

// IndexName 解析索引别名配置，未配置时使用默认名
func IndexName(key string) string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index[key]; name != "" {
		return name
	}
	return key
}

// GetPostsIndexMapping 返回 posts 索引的 mapping（含 IK 中文分词）
func GetPostsIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"ik_max_word_analyzer": {
						"type": "custom",
						"tokenizer": "ik_max_word",
						"filter": ["lowercase"]
					},
					"ik_smart_analyzer": {
						"type": "custom",
						"tokenizer": "ik_smart",
						"filter": ["lowercase"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"author_id": {"type": "long"},
				"author_name": {"type": "keyword"},
				"content": {
					"type": "text",
					"analyzer": "ik_max_word",
					"search_analyzer": "ik_smart"
				},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// GetVideosIndexMapping 返回 videos 索引的 mapping（含 IK 中文分词）
func GetVideosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"ik_max_word_analyzer": {
						"type": "custom",
						"tokenizer": "ik_max_word",
						"filter": ["lowercase"]
					},
					"ik_smart_analyzer": {
						"type": "custom",
						"tokenizer": "ik_smart",
						"filter": ["lowercase"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"author_id": {"type": "long"},
				"author_name": {"type": "keyword"},
				"description": {
					"type": "text",
					"analyzer": "ik_max_word",
					"search_analyzer": "ik_smart"
				},
				"sound_name": {
					"type": "text",
					"analyzer": "ik_max_word",
					"search_analyzer": "ik_smart",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// ensureIndex 确保索引存在，不存在则创建
func ensureIndex(ctx context.Context, indexName, mapping string) error {
	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch index already exists", zap.String("index", indexName))
		return nil
	}

	resp, err := IndicesCreate(ctx, indexName, bytes.NewReader([]byte(mapping)))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ensureIndex(ctx, IndexName("posts"), GetPostsIndexMapping()); err != nil {
		return err
	}
	return ensureIndex(ctx, IndexName("videos"), GetVideosIndexMapping())
}
