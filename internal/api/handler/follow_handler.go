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

type FollowHandler struct {
	relationService *service.RelationService
}

func NewFollowHandler(relationService *service.RelationService) *FollowHandler {
	return &FollowHandler{relationService: relationService}
}

// Create 发起关注请求
// @Summary 发起关注请求
// @Description 向目标用户发起关注请求，进入 pending 状态等待对方处理
// @Tags 关注
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FollowCreateRequest true "关注目标"
// @Success 201 {object} response.Response{data=dto.FollowInfo} "请求成功"
// @Failure 400 {object} response.ErrorResponse "不能关注自己"
// @Failure 404 {object} response.ErrorResponse "目标用户不存在"
// @Router /follows [post]
func (h *FollowHandler) Create(c *gin.Context) {
	var req dto.FollowCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.relationService.RequestFollow(currentUserID, req.FollowingID)
	if err != nil {
		handleFollowError(c, err)
		return
	}

	response.Created(c, "关注请求已发送", info)
}

// Resolve 处理关注请求
// @Summary 处理关注请求
// @Description 被关注方通过或拒绝一条待处理的关注请求
// @Tags 关注
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "关注记录ID"
// @Param request body dto.FollowResolveRequest true "处理结果"
// @Success 200 {object} response.Response{data=dto.FollowInfo} "处理成功"
// @Failure 400 {object} response.ErrorResponse "状态无效或请求已处理"
// @Failure 403 {object} response.ErrorResponse "只有被关注方可以处理"
// @Failure 404 {object} response.ErrorResponse "关注记录不存在"
// @Router /follows/{id} [put]
func (h *FollowHandler) Resolve(c *gin.Context) {
	followID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的关注记录ID")
		return
	}

	var req dto.FollowResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.relationService.ResolveFollow(followID, currentUserID, req.Status)
	if err != nil {
		handleFollowError(c, err)
		return
	}

	response.OK(c, "处理关注请求成功", info)
}

func handleFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCannotFollowSelf),
		errors.Is(err, service.ErrInvalidFollowStatus),
		errors.Is(err, service.ErrFollowResolved):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrFollowNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Follow operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
