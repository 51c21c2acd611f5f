package handler

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/api/middleware"
	"socialvid-go/internal/api/response"
	"socialvid-go/internal/model"
	"socialvid-go/internal/service"
	"socialvid-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService   *service.VideoService
	feedService    *service.FeedService
	commentService *service.CommentService
}

func NewVideoHandler(videoService *service.VideoService, feedService *service.FeedService, commentService *service.CommentService) *VideoHandler {
	return &VideoHandler{
		videoService:   videoService,
		feedService:    feedService,
		commentService: commentService,
	}
}

// Create POST /api/v1/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Create(currentUserID, &req)
	if err != nil {
		logger.Error("Create video failed", zap.Error(err))
		response.InternalError(c, "发布视频失败")
		return
	}

	response.Created(c, "发布视频成功", info)
}

// GetFeed GET /api/v1/videos/feed（公开，登录后附带点赞状态）
func (h *VideoHandler) GetFeed(c *gin.Context) {
	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.feedService.GetVideoFeed(viewerID)
	if err != nil {
		logger.Error("Get video feed failed", zap.Error(err))
		response.InternalError(c, "获取视频流失败")
		return
	}

	response.OK(c, "获取视频流成功", data)
}

// GetComments GET /api/v1/videos/:id/comments（公开）
func (h *VideoHandler) GetComments(c *gin.Context) {
	videoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	data, err := h.commentService.ListByTarget(model.VideoTarget(videoID))
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get video comments failed", zap.Error(err))
		response.InternalError(c, "获取评论失败")
		return
	}

	response.OK(c, "获取评论成功", data)
}
