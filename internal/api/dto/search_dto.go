package dto

// SearchRequest 全文检索请求
type SearchRequest struct {
	Q        string `form:"q" binding:"required"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// SearchPostData 帖子检索结果
type SearchPostData struct {
	Posts []PostInfo `json:"posts"`
	Total int64      `json:"total"`
}

// SearchVideoData 视频检索结果
type SearchVideoData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}
