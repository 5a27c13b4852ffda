package service

import "context"

// ColdStartScore 没有任何依据时给未读帖子的保底分
const ColdStartScore = 0.5

// Strategy 每种打分策略给出 帖子id->分数 的映射
type Strategy interface {
	Name() string
	GetScores(ctx context.Context, userId int64) (map[int64]float64, error)
}

// LikeRow 一条点赞记录
type LikeRow struct {
	UserId int64
	PostId int64
}

// PostInfo 打分需要的帖子元信息
type PostInfo struct {
	PostId       int64
	Tag          string
	OptionalTags []string
}

// DataReader 策略只通过这层读数据，便于用假数据测试打分
type DataReader interface {
	LikedPostIds(ctx context.Context, userId int64) ([]int64, error)
	// InteractedPostIds 用户碰过的帖子：赞、踩、评论、浏览、分享都算
	InteractedPostIds(ctx context.Context, userId int64) ([]int64, error)
	LikersOfPosts(ctx context.Context, postIds []int64) ([]int64, error)
	LikesOfUsers(ctx context.Context, userIds []int64) ([]LikeRow, error)
	ActivePosts(ctx context.Context) ([]*PostInfo, error)
}
