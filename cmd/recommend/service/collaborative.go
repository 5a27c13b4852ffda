package service

import (
	"context"

	"github.com/pkg/errors"
)

// CollaborativeFiltering 口味相近的用户赞过什么，就给什么加分。
// 目标用户没赞过的帖子每被一个相近用户赞过记1分，
// 完全没有信号的帖子拿保底分，避免冷启动时无帖可推
type CollaborativeFiltering struct {
	reader DataReader
}

func NewCollaborativeFiltering(reader DataReader) *CollaborativeFiltering {
	return &CollaborativeFiltering{reader: reader}
}

func (s *CollaborativeFiltering) Name() string { return "collaborative_filtering" }

func (s *CollaborativeFiltering) GetScores(ctx context.Context, userId int64) (map[int64]float64, error) {
	mine, err := s.reader.LikedPostIds(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "read liked posts failed")
	}
	liked := make(map[int64]bool, len(mine))
	for _, id := range mine {
		liked[id] = true
	}

	scores := make(map[int64]float64)
	if len(mine) > 0 {
		likers, err := s.reader.LikersOfPosts(ctx, mine)
		if err != nil {
			return nil, errors.WithMessage(err, "read likers failed")
		}
		peers := make([]int64, 0, len(likers))
		for _, id := range likers {
			if id != userId {
				peers = append(peers, id)
			}
		}
		if len(peers) > 0 {
			rows, err := s.reader.LikesOfUsers(ctx, peers)
			if err != nil {
				return nil, errors.WithMessage(err, "read peer likes failed")
			}
			for _, row := range rows {
				if !liked[row.PostId] {
					scores[row.PostId]++
				}
			}
		}
	}

	posts, err := s.reader.ActivePosts(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "read posts failed")
	}
	for _, p := range posts {
		if liked[p.PostId] {
			continue
		}
		if _, scored := scores[p.PostId]; !scored {
			scores[p.PostId] = ColdStartScore
		}
	}
	return scores, nil
}
