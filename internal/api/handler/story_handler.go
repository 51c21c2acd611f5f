package handler

import (
	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/api/middleware"
	"socialvid-go/internal/api/response"
	"socialvid-go/internal/service"
	"socialvid-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StoryHandler struct {
	storyService *service.StoryService
	feedService  *service.FeedService
}

func NewStoryHandler(storyService *service.StoryService, feedService *service.FeedService) *StoryHandler {
	return &StoryHandler{storyService: storyService, feedService: feedService}
}

// Create POST /api/v1/stories
func (h *StoryHandler) Create(c *gin.Context) {
	var req dto.StoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.storyService.Create(currentUserID, &req)
	if err != nil {
		logger.Error("Create story failed", zap.Error(err))
		response.InternalError(c, "发布快拍失败")
		return
	}

	response.Created(c, "发布快拍成功", info)
}

// List GET /api/v1/stories（已通过关注的作者与本人的未过期快拍）
func (h *StoryHandler) List(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.feedService.GetActiveStories(currentUserID)
	if err != nil {
		logger.Error("List stories failed", zap.Error(err))
		response.InternalError(c, "获取快拍失败")
		return
	}

	response.OK(c, "获取快拍成功", data)
}
