package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

// ESPostDoc ES 帖子文档结构
type ESPostDoc struct {
	ID         int64  `json:"id"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// ESVideoDoc ES 视频文档结构
type ESVideoDoc struct {
	ID          int64  `json:"id"`
	AuthorID    int64  `json:"author_id"`
	AuthorName  string `json:"author_name"`
	Description string `json:"description"`
	SoundName   string `json:"sound_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// indexDoc 写入单个文档
func indexDoc(ctx context.Context, indexName string, id int64, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, indexName, fmt.Sprintf("%d", id), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}
	return nil
}

// SyncPost 同步单个帖子到 ES
func SyncPost(ctx context.Context, doc *ESPostDoc) error {
	if err := indexDoc(ctx, IndexName("posts"), doc.ID, doc); err != nil {
		return err
	}
	logger.Debug("Post synced to ES", zap.Int64("post_id", doc.ID))
	return nil
}

// SyncVideo 同步单个视频到 ES
func SyncVideo(ctx context.Context, doc *ESVideoDoc) error {
	if err := indexDoc(ctx, IndexName("videos"), doc.ID, doc); err != nil {
		return err
	}
	logger.Debug("Video synced to ES", zap.Int64("video_id", doc.ID))
	return nil
}
