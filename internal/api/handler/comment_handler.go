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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	target, err := service.TargetFromRequest(req.PostID, req.VideoID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(currentUserID, target, req.Content)
	if err != nil {
		handleTargetError(c, err)
		return
	}

	response.Created(c, "评论成功", info)
}

// handleTargetError 点赞/评论共用的目标类错误映射
func handleTargetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTarget):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Content target operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
