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

type PostHandler struct {
	postService    *service.PostService
	feedService    *service.FeedService
	commentService *service.CommentService
}

func NewPostHandler(postService *service.PostService, feedService *service.FeedService, commentService *service.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		feedService:    feedService,
		commentService: commentService,
	}
}

// Create 发布帖子
// @Summary 发布帖子
// @Description 发布一条帖子，privacy 省略时默认 public
// @Tags 帖子
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostCreateRequest true "帖子内容"
// @Success 201 {object} response.Response{data=dto.PostInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.postService.Create(currentUserID, &req)
	if err != nil {
		logger.Error("Create post failed", zap.Error(err))
		response.InternalError(c, "发布帖子失败")
		return
	}

	response.Created(c, "发布帖子成功", info)
}

// GetFeed 获取帖子信息流
// @Summary 获取帖子信息流
// @Description 已通过关注的作者与本人的帖子，加上全部公开帖子，按时间倒序
// @Tags 帖子
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.PostFeedData} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /posts/feed [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.feedService.GetSocialFeed(currentUserID)
	if err != nil {
		logger.Error("Get post feed failed", zap.Error(err))
		response.InternalError(c, "获取信息流失败")
		return
	}

	response.OK(c, "获取信息流成功", data)
}

// GetComments GET /api/v1/posts/:id/comments（公开）
func (h *PostHandler) GetComments(c *gin.Context) {
	postID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的帖子ID")
		return
	}

	data, err := h.commentService.ListByTarget(model.PostTarget(postID))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get post comments failed", zap.Error(err))
		response.InternalError(c, "获取评论失败")
		return
	}

	response.OK(c, "获取评论成功", data)
}
