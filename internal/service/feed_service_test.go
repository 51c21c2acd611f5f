package service

import (
	"errors"
	"testing"
	"time"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
)

func TestSocialFeedVisibility(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	carol := env.registerUser(t, "carol")

	private := env.createPost(t, alice.ID, "alice private", "private")
	public := env.createPost(t, bob.ID, "bob public", "public")
	own := env.createPost(t, carol.ID, "carol private", "private")

	// 未关注任何人：能看到公开帖和自己的私密帖
	feed, err := env.feed.GetSocialFeed(carol.ID)
	if err != nil {
		t.Fatalf("GetSocialFeed: %v", err)
	}
	ids := postIDs(feed.Posts)
	if !ids[public.ID] || !ids[own.ID] {
		t.Errorf("feed missing public or own post: %v", ids)
	}
	if ids[private.ID] {
		t.Error("feed leaked private post of non-followed user")
	}

	// 关注通过后能看到 alice 的私密帖
	env.acceptedFollow(t, carol.ID, alice.ID)

	feed, err = env.feed.GetSocialFeed(carol.ID)
	if err != nil {
		t.Fatalf("GetSocialFeed after follow: %v", err)
	}
	if !postIDs(feed.Posts)[private.ID] {
		t.Error("feed missing followed user's private post")
	}
}

func TestSocialFeedPendingFollowDoesNotExpose(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	carol := env.registerUser(t, "carol")

	private := env.createPost(t, alice.ID, "alice private", "private")

	if _, err := env.relations.RequestFollow(carol.ID, alice.ID); err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}

	feed, err := env.feed.GetSocialFeed(carol.ID)
	if err != nil {
		t.Fatalf("GetSocialFeed: %v", err)
	}
	if postIDs(feed.Posts)[private.ID] {
		t.Error("pending follow exposed private post")
	}
}

func TestSocialFeedNewestFirst(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	older := env.createPost(t, alice.ID, "older", "public")
	newerPost := env.createPost(t, alice.ID, "newer", "public")

	feed, err := env.feed.GetSocialFeed(alice.ID)
	if err != nil {
		t.Fatalf("GetSocialFeed: %v", err)
	}
	if len(feed.Posts) != 2 {
		t.Fatalf("feed size = %d, want 2", len(feed.Posts))
	}
	if feed.Posts[0].ID != newerPost.ID || feed.Posts[1].ID != older.ID {
		t.Errorf("order = [%d, %d], want [%d, %d]", feed.Posts[0].ID, feed.Posts[1].ID, newerPost.ID, older.ID)
	}
}

func TestVideoFeedIsGlobal(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	video := env.createVideo(t, alice.ID, "clip")

	// bob 没有关注 alice，视频流仍然可见
	feed, err := env.feed.GetVideoFeed(bob.ID)
	if err != nil {
		t.Fatalf("GetVideoFeed: %v", err)
	}
	if feed.Total != 1 || feed.Videos[0].ID != video.ID {
		t.Errorf("video feed = %+v, want the single clip", feed.Videos)
	}

	// 匿名观看者同样可见，且没有点赞状态
	anon, err := env.feed.GetVideoFeed(0)
	if err != nil {
		t.Fatalf("GetVideoFeed anonymous: %v", err)
	}
	if anon.Total != 1 {
		t.Errorf("anonymous feed total = %d, want 1", anon.Total)
	}
	if anon.Videos[0].IsLiked {
		t.Error("anonymous viewer got is_liked = true")
	}
}

func TestFeedEnrichment(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	post := env.createPost(t, bob.ID, "hello", "public")
	target := model.PostTarget(post.ID)

	if _, err := env.likes.Like(alice.ID, target); err != nil {
		t.Fatalf("Like: %v", err)
	}
	if _, err := env.comments.Create(alice.ID, target, "hi"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	feed, err := env.feed.GetSocialFeed(alice.ID)
	if err != nil {
		t.Fatalf("GetSocialFeed: %v", err)
	}

	var found bool
	for _, p := range feed.Posts {
		if p.ID != post.ID {
			continue
		}
		found = true
		if p.LikeCount != 1 {
			t.Errorf("LikeCount = %d, want 1", p.LikeCount)
		}
		if p.CommentCount != 1 {
			t.Errorf("CommentCount = %d, want 1", p.CommentCount)
		}
		if !p.IsLiked {
			t.Error("IsLiked = false for liking viewer")
		}
		if p.Author == nil || p.Author.Username != "bob" {
			t.Errorf("Author = %+v, want bob", p.Author)
		}
	}
	if !found {
		t.Fatal("post missing from feed")
	}
}

func TestGetUserPostsUnknownUser(t *testing.T) {
	env := newTestEnv()

	if _, err := env.feed.GetUserPosts(404, 0); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := env.feed.GetUserVideos(404, 0); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("videos err = %v, want ErrUserNotFound", err)
	}
}

func TestActiveStories(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	carol := env.registerUser(t, "carol")

	env.acceptedFollow(t, carol.ID, alice.ID)

	fresh, err := env.stories.Create(alice.ID, storyReq("https://cdn.example.com/s/1.jpg"))
	if err != nil {
		t.Fatalf("create story: %v", err)
	}

	// 直接写入一条已过期的快拍：惰性过滤应把它挡在列表之外
	expired := &model.Story{
		UserID:    alice.ID,
		ImageURL:  "https://cdn.example.com/s/old.jpg",
		CreatedAt: time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := env.repos.Story.Create(expired); err != nil {
		t.Fatalf("seed expired story: %v", err)
	}

	// 未关注作者的快拍不可见
	if _, err := env.stories.Create(bob.ID, storyReq("https://cdn.example.com/s/2.jpg")); err != nil {
		t.Fatalf("create bob story: %v", err)
	}

	data, err := env.feed.GetActiveStories(carol.ID)
	if err != nil {
		t.Fatalf("GetActiveStories: %v", err)
	}
	if data.Total != 1 {
		t.Fatalf("stories = %d, want 1", data.Total)
	}
	if data.Stories[0].ID != fresh.ID {
		t.Errorf("story = %d, want %d", data.Stories[0].ID, fresh.ID)
	}
	if data.Stories[0].Author == nil || data.Stories[0].Author.ID != alice.ID {
		t.Errorf("author = %+v, want alice", data.Stories[0].Author)
	}
}

func TestStoryExpiryWindow(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	info, err := env.stories.Create(alice.ID, storyReq("https://cdn.example.com/s/1.jpg"))
	if err != nil {
		t.Fatalf("create story: %v", err)
	}
	if got := info.ExpiresAt.Sub(info.CreatedAt); got != model.StoryTTL {
		t.Errorf("expiry window = %v, want %v", got, model.StoryTTL)
	}
}

func postIDs(posts []dto.PostInfo) map[int64]bool {
	ids := make(map[int64]bool, len(posts))
	for _, p := range posts {
		ids[p.ID] = true
	}
	return ids
}

func storyReq(imageURL string) *dto.StoryCreateRequest {
	return &dto.StoryCreateRequest{ImageURL: imageURL}
}
