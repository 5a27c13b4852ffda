package service

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// Engine 把各策略的分数相加后取前几名
type Engine struct {
	strategies []Strategy
}

func NewEngine(strategies ...Strategy) *Engine {
	return &Engine{strategies: strategies}
}

// RecommendPosts 任一策略读库失败则整次推荐作废
func (e *Engine) RecommendPosts(ctx context.Context, userId int64, topN int) ([]int64, error) {
	combined := make(map[int64]float64)
	for _, s := range e.strategies {
		scores, err := s.GetScores(ctx, userId)
		if err != nil {
			return nil, errors.WithMessagef(err, "strategy %s failed", s.Name())
		}
		for postId, score := range scores {
			combined[postId] += score
		}
	}

	type scored struct {
		postId int64
		score  float64
	}
	ranked := make([]scored, 0, len(combined))
	for postId, score := range combined {
		ranked = append(ranked, scored{postId: postId, score: score})
	}
	// 分数相同时id小的在前，保证结果稳定
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].postId < ranked[j].postId
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	ids := make([]int64, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.postId)
	}
	return ids, nil
}
