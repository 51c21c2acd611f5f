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

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchPosts 搜索帖子
// @Summary 搜索帖子
// @Description 根据关键词搜索帖子内容
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.SearchPostData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /search/posts [get]
func (h *SearchHandler) SearchPosts(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.searchService.SearchPosts(&req, viewerID)
	if err != nil {
		logger.Error("Search posts failed", zap.Error(err))
		response.InternalError(c, "搜索失败")
		return
	}

	response.OK(c, "搜索成功", data)
}

// SearchVideos 搜索视频
// @Summary 搜索视频
// @Description 根据关键词搜索视频描述与配乐名
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.SearchVideoData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /search/videos [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	viewerID, _ := middleware.GetCurrentUserID(c)

	data, err := h.searchService.SearchVideos(&req, viewerID)
	if err != nil {
		logger.Error("Search videos failed", zap.Error(err))
		response.InternalError(c, "搜索失败")
		return
	}

	response.OK(c, "搜索成功", data)
}
