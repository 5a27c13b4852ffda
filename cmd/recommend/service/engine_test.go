package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// fakeReader 内存里的互动和帖子数据，touches放点赞以外的互动
type fakeReader struct {
	likes   []LikeRow
	touches []LikeRow
	posts   []*PostInfo
	err     error
}

func (f *fakeReader) LikedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	var ids []int64
	for _, row := range f.likes {
		if row.UserId == userId {
			ids = append(ids, row.PostId)
		}
	}
	return ids, nil
}

func (f *fakeReader) InteractedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, row := range append(append([]LikeRow{}, f.likes...), f.touches...) {
		if row.UserId == userId && !seen[row.PostId] {
			seen[row.PostId] = true
			ids = append(ids, row.PostId)
		}
	}
	return ids, nil
}

func (f *fakeReader) LikersOfPosts(ctx context.Context, postIds []int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]bool, len(postIds))
	for _, id := range postIds {
		wanted[id] = true
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, row := range f.likes {
		if wanted[row.PostId] && !seen[row.UserId] {
			seen[row.UserId] = true
			ids = append(ids, row.UserId)
		}
	}
	return ids, nil
}

func (f *fakeReader) LikesOfUsers(ctx context.Context, userIds []int64) ([]LikeRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]bool, len(userIds))
	for _, id := range userIds {
		wanted[id] = true
	}
	var rows []LikeRow
	for _, row := range f.likes {
		if wanted[row.UserId] {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeReader) ActivePosts(ctx context.Context) ([]*PostInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func postsWithTags(tags map[int64][]string) []*PostInfo {
	posts := make([]*PostInfo, 0, len(tags))
	for id, ts := range tags {
		posts = append(posts, &PostInfo{PostId: id, Tag: ts[0], OptionalTags: ts[1:]})
	}
	return posts
}

func TestCollaborativeFiltering(t *testing.T) {
	ctx := context.Background()

	t.Run("PeerLikesAddUp", func(t *testing.T) {
		// 用户1赞了帖子10；用户2和3也赞过帖子10，他们各自还赞了帖子20
		reader := &fakeReader{
			likes: []LikeRow{
				{UserId: 1, PostId: 10},
				{UserId: 2, PostId: 10},
				{UserId: 2, PostId: 20},
				{UserId: 3, PostId: 10},
				{UserId: 3, PostId: 20},
			},
			posts: postsWithTags(map[int64][]string{
				10: {"Tantrums"},
				20: {"Tantrums"},
				30: {"Reading"},
			}),
		}
		scores, err := NewCollaborativeFiltering(reader).GetScores(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 2.0, scores[20])
		// 没有任何信号的帖子拿保底分
		assert.Equal(t, ColdStartScore, scores[30])
		// 自己赞过的不再推荐
		_, ok := scores[10]
		assert.False(t, ok)
	})

	t.Run("UnknownUserGetsColdStartEverywhere", func(t *testing.T) {
		reader := &fakeReader{
			likes: []LikeRow{{UserId: 2, PostId: 10}},
			posts: postsWithTags(map[int64][]string{
				10: {"Tantrums"},
				20: {"Reading"},
			}),
		}
		scores, err := NewCollaborativeFiltering(reader).GetScores(ctx, 99)
		assert.NoError(t, err)
		assert.Equal(t, ColdStartScore, scores[10])
		assert.Equal(t, ColdStartScore, scores[20])
	})

	t.Run("ReaderErrorAborts", func(t *testing.T) {
		reader := &fakeReader{err: errors.New("db is down")}
		_, err := NewCollaborativeFiltering(reader).GetScores(ctx, 1)
		assert.Error(t, err)
	})
}

func TestContentBased(t *testing.T) {
	ctx := context.Background()

	t.Run("PrimaryAndOptionalTagScores", func(t *testing.T) {
		// 用户1赞过帖子10，兴趣并集是{Tantrums, Boundaries}
		reader := &fakeReader{
			likes: []LikeRow{{UserId: 1, PostId: 10}},
			posts: postsWithTags(map[int64][]string{
				10: {"Tantrums", "Boundaries"},
				20: {"Tantrums", "Boundaries"},       // 主分类+2 可选+1
				30: {"Reading", "Tantrums"},          // 仅可选命中+1
				40: {"Reading", "Music", "Drawing"},  // 零分，不出现
			}),
		}
		scores, err := NewContentBased(reader).GetScores(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 3.0, scores[20])
		assert.Equal(t, 1.0, scores[30])
		_, ok := scores[40]
		assert.False(t, ok)
	})

	t.Run("InteractedPostItselfIsScored", func(t *testing.T) {
		// 所有帖子都参与打分，赞过的那篇自己也拿主分类的2分
		reader := &fakeReader{
			likes: []LikeRow{{UserId: 1, PostId: 10}},
			posts: postsWithTags(map[int64][]string{
				10: {"Tantrums"},
			}),
		}
		scores, err := NewContentBased(reader).GetScores(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 2.0, scores[10])
	})

	t.Run("CommentOnlyInteractionBuildsInterests", func(t *testing.T) {
		// 一个赞都没点过，只评论过帖子10，兴趣画像照样成立
		reader := &fakeReader{
			touches: []LikeRow{{UserId: 1, PostId: 10}},
			posts: postsWithTags(map[int64][]string{
				10: {"Tantrums"},
				20: {"Tantrums"},
				30: {"Reading"},
			}),
		}
		scores, err := NewContentBased(reader).GetScores(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 2.0, scores[10])
		assert.Equal(t, 2.0, scores[20])
		_, ok := scores[30]
		assert.False(t, ok)
	})

	t.Run("NoInteractionsMeansNoScores", func(t *testing.T) {
		reader := &fakeReader{
			posts: postsWithTags(map[int64][]string{10: {"Tantrums"}}),
		}
		scores, err := NewContentBased(reader).GetScores(ctx, 1)
		assert.NoError(t, err)
		assert.Empty(t, scores)
	})
}

// fixedStrategy 返回固定分数表
type fixedStrategy struct {
	name   string
	scores map[int64]float64
	err    error
}

func (s *fixedStrategy) Name() string { return s.name }
func (s *fixedStrategy) GetScores(ctx context.Context, userId int64) (map[int64]float64, error) {
	return s.scores, s.err
}

func TestEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("SumsAndRanks", func(t *testing.T) {
		engine := NewEngine(
			&fixedStrategy{name: "a", scores: map[int64]float64{1: 1, 2: 2, 3: 0.5}},
			&fixedStrategy{name: "b", scores: map[int64]float64{1: 3, 3: 0.5}},
		)
		ids, err := engine.RecommendPosts(ctx, 7, 10)
		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("TieBreaksByLowerId", func(t *testing.T) {
		engine := NewEngine(
			&fixedStrategy{name: "a", scores: map[int64]float64{5: 1, 3: 1, 9: 1}},
		)
		ids, err := engine.RecommendPosts(ctx, 7, 10)
		assert.NoError(t, err)
		assert.Equal(t, []int64{3, 5, 9}, ids)
	})

	t.Run("TopNCutsTheTail", func(t *testing.T) {
		engine := NewEngine(
			&fixedStrategy{name: "a", scores: map[int64]float64{1: 3, 2: 2, 3: 1}},
		)
		ids, err := engine.RecommendPosts(ctx, 7, 2)
		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("StrategyErrorAbortsAll", func(t *testing.T) {
		engine := NewEngine(
			&fixedStrategy{name: "a", scores: map[int64]float64{1: 3}},
			&fixedStrategy{name: "b", err: errors.New("reader failed")},
		)
		_, err := engine.RecommendPosts(ctx, 7, 10)
		assert.Error(t, err)
	})

	t.Run("NoStrategiesMeansEmpty", func(t *testing.T) {
		engine := NewEngine()
		ids, err := engine.RecommendPosts(ctx, 7, 10)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}
