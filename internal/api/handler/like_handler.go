package handler

import (
	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/api/middleware"
	"socialvid-go/internal/api/response"
	"socialvid-go/internal/model"
	"socialvid-go/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like POST /api/v1/likes（幂等，重复点赞返回已有记录）
func (h *LikeHandler) Like(c *gin.Context) {
	target, ok := h.bindTarget(c)
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.Like(currentUserID, target)
	if err != nil {
		handleTargetError(c, err)
		return
	}

	response.Created(c, "点赞成功", data)
}

// Unlike DELETE /api/v1/likes（未点赞时视为成功）
func (h *LikeHandler) Unlike(c *gin.Context) {
	target, ok := h.bindTarget(c)
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.Unlike(currentUserID, target)
	if err != nil {
		handleTargetError(c, err)
		return
	}

	response.OK(c, "取消点赞成功", data)
}

// Toggle POST /api/v1/likes/toggle
func (h *LikeHandler) Toggle(c *gin.Context) {
	target, ok := h.bindTarget(c)
	if !ok {
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.Toggle(currentUserID, target)
	if err != nil {
		handleTargetError(c, err)
		return
	}

	response.OK(c, "切换点赞状态成功", data)
}

func (h *LikeHandler) bindTarget(c *gin.Context) (model.Target, bool) {
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return model.Target{}, false
	}

	target, err := service.TargetFromRequest(req.PostID, req.VideoID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return model.Target{}, false
	}
	return target, true
}
