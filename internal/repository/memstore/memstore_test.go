package memstore

import (
	"errors"
	"sync"
	"testing"
	"time"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repos := New().Repositories()

	for want := int64(1); want <= 3; want++ {
		user := &model.User{Username: string(rune('a' + want)), DisplayName: "u"}
		if err := repos.User.Create(user); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if user.ID != want {
			t.Errorf("ID = %d, want %d", user.ID, want)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repos := New().Repositories()

	if _, err := repos.User.GetByID(404); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("user err = %v, want ErrNotFound", err)
	}
	if _, err := repos.Post.GetByID(404); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("post err = %v, want ErrNotFound", err)
	}
	if _, err := repos.Follow.GetByID(404); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("follow err = %v, want ErrNotFound", err)
	}
}

func TestConcurrentCreates(t *testing.T) {
	repos := New().Repositories()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				post := &model.Post{UserID: 1, Content: "c", Privacy: model.PrivacyPublic}
				if err := repos.Post.Create(post); err != nil {
					t.Errorf("Create: %v", err)
					return
				}
				ids <- post.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("created %d posts, want %d", len(seen), workers*perWorker)
	}
}

func TestUserUpdateFields(t *testing.T) {
	repos := New().Repositories()

	user := &model.User{Username: "alice", DisplayName: "Alice"}
	if err := repos.User.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repos.User.Update(user.ID, map[string]interface{}{
		"display_name": "Alice Cooper",
		"bio":          "singer",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DisplayName != "Alice Cooper" {
		t.Errorf("display_name = %q", updated.DisplayName)
	}
	if updated.Bio == nil || *updated.Bio != "singer" {
		t.Errorf("bio = %v, want singer", updated.Bio)
	}
	if updated.Username != "alice" {
		t.Errorf("username changed to %q", updated.Username)
	}

	if _, err := repos.User.Update(404, map[string]interface{}{"bio": "x"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing user err = %v, want ErrNotFound", err)
	}
}

func TestListFeedFiltersByOwnerAndPrivacy(t *testing.T) {
	repos := New().Repositories()

	seed := func(userID int64, privacy string) int64 {
		post := &model.Post{UserID: userID, Content: "c", Privacy: privacy}
		if err := repos.Post.Create(post); err != nil {
			t.Fatalf("Create: %v", err)
		}
		return post.ID
	}

	ownPrivate := seed(1, model.PrivacyPrivate)
	otherPublic := seed(2, model.PrivacyPublic)
	otherPrivate := seed(2, model.PrivacyPrivate)

	posts, err := repos.Post.ListFeed([]int64{1})
	if err != nil {
		t.Fatalf("ListFeed: %v", err)
	}

	got := make(map[int64]bool)
	for _, p := range posts {
		got[p.ID] = true
	}
	if !got[ownPrivate] || !got[otherPublic] {
		t.Errorf("feed = %v, want own private and other public", got)
	}
	if got[otherPrivate] {
		t.Error("feed leaked private post of excluded owner")
	}
}

func TestListOrderNewestFirst(t *testing.T) {
	repos := New().Repositories()

	base := time.Now()
	older := &model.Post{UserID: 1, Content: "old", Privacy: model.PrivacyPublic, CreatedAt: base.Add(-time.Hour)}
	newest := &model.Post{UserID: 1, Content: "new", Privacy: model.PrivacyPublic, CreatedAt: base}
	if err := repos.Post.Create(older); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repos.Post.Create(newest); err != nil {
		t.Fatalf("Create: %v", err)
	}

	posts, err := repos.Post.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != newest.ID {
		t.Errorf("order = %v, want newest first", posts)
	}
}

func TestStoryActiveFilter(t *testing.T) {
	repos := New().Repositories()

	now := time.Now()
	active := &model.Story{UserID: 1, ImageURL: "a", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	expired := &model.Story{UserID: 1, ImageURL: "b", CreatedAt: now.Add(-25 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	if err := repos.Story.Create(active); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repos.Story.Create(expired); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stories, err := repos.Story.ListActiveByUsers([]int64{1}, now)
	if err != nil {
		t.Fatalf("ListActiveByUsers: %v", err)
	}
	if len(stories) != 1 || stories[0].ID != active.ID {
		t.Errorf("stories = %v, want only the active one", stories)
	}
}

func TestLikeDeleteByUserAndTarget(t *testing.T) {
	repos := New().Repositories()

	postID := int64(7)
	like := &model.Like{UserID: 1, PostID: &postID}
	if err := repos.Like.Create(like); err != nil {
		t.Fatalf("Create: %v", err)
	}

	target := model.PostTarget(postID)

	deleted, err := repos.Like.DeleteByUserAndTarget(1, target)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("deleted = false for existing like")
	}

	deleted, err = repos.Like.DeleteByUserAndTarget(1, target)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("deleted = true for missing like")
	}

	count, err := repos.Like.CountByTarget(target)
	if err != nil {
		t.Fatalf("CountByTarget: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
