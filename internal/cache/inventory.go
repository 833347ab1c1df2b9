package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%d"
	FeedFirstPage = "feed:page:1"
	UserKeyPrefix = "user:%d"
)

const (
	PostTTL = 30 * time.Minute
	FeedTTL = 1 * time.Minute
	UserTTL = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateFeed drops the cached first page of the public feed. Called on
// every post mutation since any of them can change page one.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedFirstPage)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
