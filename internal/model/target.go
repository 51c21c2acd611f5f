package model

// TargetKind 内容目标类型
type TargetKind string

const (
	TargetPost  TargetKind = "post"
	TargetVideo TargetKind = "video"
)

// Target 点赞/评论指向的内容目标，帖子或视频二选一
type Target struct {
	Kind TargetKind
	ID   int64
}

// PostTarget 构造帖子目标
func PostTarget(id int64) Target {
	return Target{Kind: TargetPost, ID: id}
}

// VideoTarget 构造视频目标
func VideoTarget(id int64) Target {
	return Target{Kind: TargetVideo, ID: id}
}

// Valid 判断目标是否合法（零值与未知类型均不合法）
func (t Target) Valid() bool {
	if t.ID <= 0 {
		return false
	}
	return t.Kind == TargetPost || t.Kind == TargetVideo
}

// IDs 按目标类型展开为可空的帖子/视频ID列
func (t Target) IDs() (postID, videoID *int64) {
	id := t.ID
	switch t.Kind {
	case TargetPost:
		return &id, nil
	case TargetVideo:
		return nil, &id
	}
	return nil, nil
}

// TargetFromIDs 由可空的帖子/视频ID构造目标，恰好一个非空才合法
func TargetFromIDs(postID, videoID *int64) (Target, bool) {
	switch {
	case postID != nil && videoID == nil:
		return PostTarget(*postID), *postID > 0
	case postID == nil && videoID != nil:
		return VideoTarget(*videoID), *videoID > 0
	}
	return Target{}, false
}
