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

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.notificationService.ListForUser(currentUserID)
	if err != nil {
		logger.Error("List notifications failed", zap.Error(err))
		response.InternalError(c, "获取通知列表失败")
		return
	}

	response.OK(c, "获取通知列表成功", data)
}

// MarkRead PUT /api/v1/notifications/:id/read（幂等）
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的通知ID")
		return
	}

	info, err := h.notificationService.MarkRead(notificationID)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Mark notification read failed", zap.Error(err))
		response.InternalError(c, "标记通知已读失败")
		return
	}

	response.OK(c, "标记已读成功", info)
}

// UnreadCount GET /api/v1/notifications/unread/count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	count, err := h.notificationService.UnreadCount(currentUserID)
	if err != nil {
		logger.Error("Count unread notifications failed", zap.Error(err))
		response.InternalError(c, "获取未读数失败")
		return
	}

	response.OK(c, "获取未读数成功", dto.UnreadCountData{UnreadCount: count})
}
