package service

import (
	"errors"
	"time"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

// FeedService 信息流装配：按关注关系取内容并补齐作者与互动数据
type FeedService struct {
	postRepo    repository.PostRepository
	videoRepo   repository.VideoRepository
	userRepo    repository.UserRepository
	followRepo  repository.FollowRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	storyRepo   repository.StoryRepository
	likes       *LikeService
}

func NewFeedService(
	repos *repository.Repositories,
	likes *LikeService,
) *FeedService {
	return &FeedService{
		postRepo:    repos.Post,
		videoRepo:   repos.Video,
		userRepo:    repos.User,
		followRepo:  repos.Follow,
		commentRepo: repos.Comment,
		likeRepo:    repos.Like,
		storyRepo:   repos.Story,
		likes:       likes,
	}
}

// GetSocialFeed 帖子信息流：已通过关注的作者与本人的全部帖子，加上所有公开帖子
func (s *FeedService) GetSocialFeed(viewerID int64) (*dto.PostFeedData, error) {
	ownerIDs, err := s.circleOf(viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListFeed(ownerIDs)
	if err != nil {
		return nil, err
	}

	items, err := s.enrichPosts(posts, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.PostFeedData{Posts: items, Total: int64(len(items))}, nil
}

// GetUserPosts 用户主页帖子列表，viewer 为 0 时按匿名处理
func (s *FeedService) GetUserPosts(ownerID, viewerID int64) (*dto.PostFeedData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	posts, err := s.postRepo.ListByUser(ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.enrichPosts(posts, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.PostFeedData{Posts: items, Total: int64(len(items))}, nil
}

// GetVideoFeed 视频流走全量发现模式，不按关注关系过滤
func (s *FeedService) GetVideoFeed(viewerID int64) (*dto.VideoFeedData, error) {
	videos, err := s.videoRepo.ListAll()
	if err != nil {
		return nil, err
	}

	items, err := s.enrichVideos(videos, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.VideoFeedData{Videos: items, Total: int64(len(items))}, nil
}

// GetUserVideos 用户主页视频列表
func (s *FeedService) GetUserVideos(ownerID, viewerID int64) (*dto.VideoFeedData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	videos, err := s.videoRepo.ListByUser(ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.enrichVideos(videos, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.VideoFeedData{Videos: items, Total: int64(len(items))}, nil
}

// GetActiveStories 已通过关注的作者与本人的未过期快拍，过期只做惰性过滤
func (s *FeedService) GetActiveStories(viewerID int64) (*dto.StoryListData, error) {
	ownerIDs, err := s.circleOf(viewerID)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyRepo.ListActiveByUsers(ownerIDs, time.Now())
	if err != nil {
		return nil, err
	}

	authors, err := s.authorBriefs(storyAuthorIDs(stories))
	if err != nil {
		return nil, err
	}

	items := make([]dto.StoryInfo, 0, len(stories))
	for i := range stories {
		story := &stories[i]
		info := dto.StoryInfo{
			ID:        story.ID,
			UserID:    story.UserID,
			ImageURL:  story.ImageURL,
			CreatedAt: story.CreatedAt,
			ExpiresAt: story.ExpiresAt,
		}
		if brief, ok := authors[story.UserID]; ok {
			b := brief
			info.Author = &b
		}
		items = append(items, info)
	}

	return &dto.StoryListData{Stories: items, Total: int64(len(items))}, nil
}

// circleOf 观看者的内容圈：已通过关注的作者加上本人
func (s *FeedService) circleOf(viewerID int64) ([]int64, error) {
	ids, err := s.followRepo.AcceptedFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	return append(ids, viewerID), nil
}

// enrichPosts 补齐作者摘要、点赞/评论数与观看者点赞状态
func (s *FeedService) enrichPosts(posts []model.Post, viewerID int64) ([]dto.PostInfo, error) {
	authorIDs := make([]int64, 0, len(posts))
	postIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]bool)
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
		if !seen[posts[i].UserID] {
			seen[posts[i].UserID] = true
			authorIDs = append(authorIDs, posts[i].UserID)
		}
	}

	authors, err := s.authorBriefs(authorIDs)
	if err != nil {
		return nil, err
	}

	liked := map[int64]bool{}
	if viewerID > 0 {
		liked, err = s.likeRepo.BatchCheckLiked(viewerID, model.TargetPost, postIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.PostInfo, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		info := toPostInfo(post)
		if brief, ok := authors[post.UserID]; ok {
			b := brief
			info.Author = &b
		}

		target := model.PostTarget(post.ID)
		info.LikeCount, _ = s.likes.LikeCount(target)
		info.CommentCount, _ = s.commentRepo.CountByTarget(target)
		info.IsLiked = liked[post.ID]
		items = append(items, *info)
	}
	return items, nil
}

// enrichVideos 补齐作者摘要、点赞/评论数与观看者点赞状态
func (s *FeedService) enrichVideos(videos []model.Video, viewerID int64) ([]dto.VideoInfo, error) {
	authorIDs := make([]int64, 0, len(videos))
	videoIDs := make([]int64, 0, len(videos))
	seen := make(map[int64]bool)
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
		if !seen[videos[i].UserID] {
			seen[videos[i].UserID] = true
			authorIDs = append(authorIDs, videos[i].UserID)
		}
	}

	authors, err := s.authorBriefs(authorIDs)
	if err != nil {
		return nil, err
	}

	liked := map[int64]bool{}
	if viewerID > 0 {
		liked, err = s.likeRepo.BatchCheckLiked(viewerID, model.TargetVideo, videoIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		video := &videos[i]
		info := toVideoInfo(video)
		if brief, ok := authors[video.UserID]; ok {
			b := brief
			info.Author = &b
		}

		target := model.VideoTarget(video.ID)
		info.LikeCount, _ = s.likes.LikeCount(target)
		info.CommentCount, _ = s.commentRepo.CountByTarget(target)
		info.IsLiked = liked[video.ID]
		items = append(items, *info)
	}
	return items, nil
}

func (s *FeedService) authorBriefs(ids []int64) (map[int64]dto.UserBrief, error) {
	briefs := make(map[int64]dto.UserBrief, len(ids))
	if len(ids) == 0 {
		return briefs, nil
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		briefs[users[i].ID] = toUserBrief(&users[i])
	}
	return briefs, nil
}

func storyAuthorIDs(stories []model.Story) []int64 {
	ids := make([]int64, 0, len(stories))
	seen := make(map[int64]bool)
	for i := range stories {
		if !seen[stories[i].UserID] {
			seen[stories[i].UserID] = true
			ids = append(ids, stories[i].UserID)
		}
	}
	return ids
}
