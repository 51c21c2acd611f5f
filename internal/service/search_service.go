package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"socialvid-go/internal/api/dto"
	infraES "socialvid-go/internal/infra/elasticsearch"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	postRepo  repository.PostRepository
	videoRepo repository.VideoRepository
	feed      *FeedService
}

func NewSearchService(postRepo repository.PostRepository, videoRepo repository.VideoRepository, feed *FeedService) *SearchService {
	return &SearchService{postRepo: postRepo, videoRepo: videoRepo, feed: feed}
}

// SearchPosts 搜索帖子（ES 优先，失败则降级到存储层）
func (s *SearchService) SearchPosts(req *dto.SearchRequest, viewerID int64) (*dto.SearchPostData, error) {
	normalizeSearchRequest(req)

	ids, total, err := s.searchIDs(infraES.IndexName("posts"), []string{"content"}, req)
	if err != nil {
		logger.Warn("ES post search failed, fallback to store", zap.Error(err))
		return s.searchPostsFromStore(req, viewerID)
	}

	posts, err := orderedPosts(s.postRepo, ids)
	if err != nil {
		return nil, err
	}

	items, err := s.feed.enrichPosts(posts, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.SearchPostData{Posts: items, Total: total}, nil
}

// SearchVideos 搜索视频（ES 优先，失败则降级到存储层）
func (s *SearchService) SearchVideos(req *dto.SearchRequest, viewerID int64) (*dto.SearchVideoData, error) {
	normalizeSearchRequest(req)

	ids, total, err := s.searchIDs(infraES.IndexName("videos"), []string{"description^2", "sound_name"}, req)
	if err != nil {
		logger.Warn("ES video search failed, fallback to store", zap.Error(err))
		return s.searchVideosFromStore(req, viewerID)
	}

	videos, err := orderedVideos(s.videoRepo, ids)
	if err != nil {
		return nil, err
	}

	items, err := s.feed.enrichVideos(videos, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.SearchVideoData{Videos: items, Total: total}, nil
}

func normalizeSearchRequest(req *dto.SearchRequest) {
	req.Q = strings.TrimSpace(req.Q)
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}
}

// searchIDs 执行 ES 查询，返回按相关度排序的文档 ID
func (s *SearchService) searchIDs(indexName string, fields []string, req *dto.SearchRequest) ([]int64, int64, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":    req.Q,
				"fields":   fields,
				"type":     "best_fields",
				"operator": "or",
			},
		},
		"_source": []string{"id"},
		"from":    (req.Page - 1) * req.PageSize,
		"size":    req.PageSize,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
		},
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, indexName, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, esResp.Hits.Total.Value, nil
}

func (s *SearchService) searchPostsFromStore(req *dto.SearchRequest, viewerID int64) (*dto.SearchPostData, error) {
	posts, err := s.postRepo.Search(req.Q, req.Page*req.PageSize)
	if err != nil {
		return nil, err
	}
	total := int64(len(posts))
	posts = pageSlice(posts, req.Page, req.PageSize)

	items, err := s.feed.enrichPosts(posts, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.SearchPostData{Posts: items, Total: total}, nil
}

func (s *SearchService) searchVideosFromStore(req *dto.SearchRequest, viewerID int64) (*dto.SearchVideoData, error) {
	videos, err := s.videoRepo.Search(req.Q, req.Page*req.PageSize)
	if err != nil {
		return nil, err
	}
	total := int64(len(videos))
	videos = pageSlice(videos, req.Page, req.PageSize)

	items, err := s.feed.enrichVideos(videos, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.SearchVideoData{Videos: items, Total: total}, nil
}

// orderedPosts 按给定 ID 顺序取回帖子
func orderedPosts(repo repository.PostRepository, ids []int64) ([]model.Post, error) {
	posts, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Post, len(posts))
	for i := range posts {
		byID[posts[i].ID] = posts[i]
	}
	ordered := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}
	return ordered, nil
}

// orderedVideos 按给定 ID 顺序取回视频
func orderedVideos(repo repository.VideoRepository, ids []int64) ([]model.Video, error) {
	videos, err := repo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = videos[i]
	}
	ordered := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byID[id]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered, nil
}

// pageSlice 存储层降级查询的简单分页
func pageSlice[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
