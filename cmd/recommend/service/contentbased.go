package service

import (
	"context"

	"github.com/pkg/errors"
)

// ContentBased 从用户有过互动的帖子收集标签，按标签重合度给全部帖子打分。
// 主分类命中记2分，可选分类每命中一个记1分，零分的帖子不出现在结果里
type ContentBased struct {
	reader DataReader
}

func NewContentBased(reader DataReader) *ContentBased {
	return &ContentBased{reader: reader}
}

func (s *ContentBased) Name() string { return "content_based" }

const (
	primaryTagScore  = 2.0
	optionalTagScore = 1.0
)

func (s *ContentBased) GetScores(ctx context.Context, userId int64) (map[int64]float64, error) {
	mine, err := s.reader.InteractedPostIds(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "read interacted posts failed")
	}
	touched := make(map[int64]bool, len(mine))
	for _, id := range mine {
		touched[id] = true
	}

	posts, err := s.reader.ActivePosts(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "read posts failed")
	}

	// 用户的兴趣画像是互动过的帖子的标签并集
	interests := make(map[string]bool)
	for _, p := range posts {
		if !touched[p.PostId] {
			continue
		}
		interests[p.Tag] = true
		for _, t := range p.OptionalTags {
			interests[t] = true
		}
	}

	// 全部帖子都参与打分，互动过的也不例外
	scores := make(map[int64]float64)
	for _, p := range posts {
		var score float64
		if interests[p.Tag] {
			score += primaryTagScore
		}
		for _, t := range p.OptionalTags {
			if interests[t] {
				score += optionalTagScore
			}
		}
		if score > 0 {
			scores[p.PostId] = score
		}
	}
	return scores, nil
}
