package handler

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/api/middleware"
	"socialvid-go/internal/api/response"
	"socialvid-go/internal/service"
	"socialvid-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService     *service.UserService
	feedService     *service.FeedService
	relationService *service.RelationService
}

func NewUserHandler(userService *service.UserService, feedService *service.FeedService, relationService *service.RelationService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		feedService:     feedService,
		relationService: relationService,
	}
}

// GetUser GET /api/v1/users/:id（公开）
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	info, err := h.userService.GetUserByID(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取用户成功", info)
}

// UpdateUser PUT /api/v1/users/:id（仅本人）
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.userService.UpdateProfile(userID, currentUserID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "更新用户成功", info)
}

// GetUserPosts GET /api/v1/users/:id/posts（公开，登录后附带点赞状态）
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.feedService.GetUserPosts(userID, viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取用户帖子成功", data)
}

// GetUserVideos GET /api/v1/users/:id/videos（公开，登录后附带点赞状态）
func (h *UserHandler) GetUserVideos(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.feedService.GetUserVideos(userID, viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取用户视频成功", data)
}

// GetFollowers GET /api/v1/users/:id/followers（公开，仅已通过的关注）
func (h *UserHandler) GetFollowers(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	data, err := h.relationService.GetFollowers(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取粉丝列表成功", data)
}

// GetFollowing GET /api/v1/users/:id/following（公开，仅已通过的关注）
func (h *UserHandler) GetFollowing(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	data, err := h.relationService.GetFollowing(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取关注列表成功", data)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUsernameExists), errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
