package service

import (
	"context"
	"strings"
	"time"

	"Nestling.com/cmd/interaction/dal/db"
	"Nestling.com/cmd/interaction/infras/redis"
	"Nestling.com/cmd/model"
	postdb "Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

const commentRatePerMinute = 10

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentPage 一页排好序的评论
type CommentPage struct {
	Comments   []*model.CommentView `json:"comments"`
	Total      int64                `json:"total"`
	NextOffset int64                `json:"next_offset"`
}

func (v *CommentService) resolveProfile(userId int64) (*model.UserProfile, error) {
	profile, exist, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	return profile, nil
}

func (v *CommentService) checkRate(profileId int64) error {
	count, err := redis.IncrCommentCount(v.ctx, profileId)
	if err != nil {
		// 限流只是建议性的，redis不可用时放行
		hlog.Warnf("comment rate check failed: %v", err)
		return nil
	}
	if count > commentRatePerMinute {
		return errno.RequestErr.WithMessage("too many comments, slow down")
	}
	return nil
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if len(content) < constants.MinCommentLength {
		return "", errno.ParamErr.WithMessage("comment is empty")
	}
	if len(content) > constants.MaxCommentLength {
		return "", errno.ParamErr.WithMessage("comment exceeds 300 chars")
	}
	return content, nil
}

func (v *CommentService) CreateComment(postId, userId int64, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	if _, exist, err := postdb.GetPostById(v.ctx, postId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetPostById failed")
	} else if !exist {
		return nil, errno.NotFoundErr.WithMessage("post not found")
	}
	profile, err := v.resolveProfile(userId)
	if err != nil {
		return nil, err
	}
	if err = v.checkRate(profile.ProfileId); err != nil {
		return nil, err
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		AuthorId:  profile.ProfileId,
		PostId:    postId,
		ParentId:  0,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if comment, err = db.CreateComment(v.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return comment, nil
}

// CreateReply 对回复的回复会落到其顶层评论下，并自动加@前缀指向被回复的人
func (v *CommentService) CreateReply(commentId, userId int64, content string) (*model.Comment, error) {
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	target, exist, err := db.GetCommentById(v.ctx, commentId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}

	parentId := target.CommentId
	if target.ParentId != 0 {
		parentId = target.ParentId
		if author, ok, err := userdb.GetProfileById(v.ctx, target.AuthorId); err != nil {
			return nil, errors.WithMessage(err, "dao.GetProfileById failed")
		} else if ok {
			content = "@" + author.DisplayName + " " + content
		}
	}

	profile, err := v.resolveProfile(userId)
	if err != nil {
		return nil, err
	}
	if err = v.checkRate(profile.ProfileId); err != nil {
		return nil, err
	}

	now := time.Now().Format(constants.DataFormate)
	reply := &model.Comment{
		AuthorId:  profile.ProfileId,
		PostId:    target.PostId,
		ParentId:  parentId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if reply, err = db.CreateComment(v.ctx, reply); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	return reply, nil
}

// ListComments pinOwn时浏览者自己的评论全部置顶，其余分页
func (v *CommentService) ListComments(postId, viewerId, offset, limit int64, pinOwn bool) (*CommentPage, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultCommentLimit
	}
	if offset < 0 {
		offset = 0
	}
	if _, exist, err := postdb.GetPostById(v.ctx, postId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetPostById failed")
	} else if !exist {
		return nil, errno.NotFoundErr.WithMessage("post not found")
	}

	var viewerProfileId int64
	if viewerId > 0 {
		if profile, ok, err := userdb.GetProfileByUserId(v.ctx, viewerId); err != nil {
			return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
		} else if ok {
			viewerProfileId = profile.ProfileId
		}
	}

	var own []*model.CommentView
	excludeAuthor := int64(0)
	if pinOwn && viewerProfileId > 0 {
		var err error
		if own, err = db.ListOwnTopLevelComments(v.ctx, postId, viewerProfileId); err != nil {
			return nil, errors.WithMessage(err, "dao.ListOwnTopLevelComments failed")
		}
		excludeAuthor = viewerProfileId
	}

	others, err := db.ListTopLevelComments(v.ctx, postId, excludeAuthor, offset, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListTopLevelComments failed")
	}
	total, err := db.CountTopLevelComments(v.ctx, postId, excludeAuthor)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountTopLevelComments failed")
	}

	comments := append(own, others...)
	if err = v.annotate(comments, viewerProfileId); err != nil {
		return nil, err
	}

	return &CommentPage{
		Comments:   comments,
		Total:      total,
		NextOffset: offset + int64(len(others)),
	}, nil
}

// annotate 补上浏览者表态和最高赞回复
func (v *CommentService) annotate(comments []*model.CommentView, viewerProfileId int64) error {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.CommentId)
	}

	var reactions map[int64]string
	if viewerProfileId > 0 {
		var err error
		if reactions, err = db.GetUserCommentReactions(v.ctx, viewerProfileId, ids); err != nil {
			return errors.WithMessage(err, "dao.GetUserCommentReactions failed")
		}
	}

	for _, c := range comments {
		c.UserReaction = reactions[c.CommentId]
		if c.ReplyCount == 0 {
			continue
		}
		// 选最高赞回复必须扫全量
		replies, err := db.ListReplies(v.ctx, c.CommentId, 0, constants.DefaultReplyLimit)
		if err != nil {
			return errors.WithMessage(err, "dao.ListReplies failed")
		}
		c.TopReply = PickMostLikedReply(replies)
	}
	return nil
}

// ListReplies limit为0表示展开全部
func (v *CommentService) ListReplies(commentId, viewerId, offset, limit int64) ([]*model.ReplyView, error) {
	if _, exist, err := db.GetCommentById(v.ctx, commentId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetCommentById failed")
	} else if !exist {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	replies, err := db.ListReplies(v.ctx, commentId, offset, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListReplies failed")
	}

	if viewerId > 0 {
		if profile, ok, err := userdb.GetProfileByUserId(v.ctx, viewerId); err == nil && ok {
			ids := make([]int64, 0, len(replies))
			for _, r := range replies {
				ids = append(ids, r.CommentId)
			}
			reactions, err := db.GetUserCommentReactions(v.ctx, profile.ProfileId, ids)
			if err != nil {
				return nil, errors.WithMessage(err, "dao.GetUserCommentReactions failed")
			}
			for _, r := range replies {
				r.UserReaction = reactions[r.CommentId]
			}
		}
	}
	return replies, nil
}

// DeleteComment 作者本人或版主可删
func (v *CommentService) DeleteComment(commentId, userId int64) error {
	comment, exist, err := db.GetCommentById(v.ctx, commentId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetCommentById failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("comment not found")
	}

	user, ok, err := userdb.GetUserById(v.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById failed")
	}
	if !ok {
		return errno.UserNotExistErr
	}

	authorId := comment.AuthorId
	if user.Power < constants.PowerModerator {
		profile, ok, err := userdb.GetProfileByUserId(v.ctx, userId)
		if err != nil {
			return errors.WithMessage(err, "dao.GetProfileByUserId failed")
		}
		if !ok || profile.ProfileId != comment.AuthorId {
			return errno.PermissionErr
		}
	}

	deleted, err := db.SoftDeleteComment(v.ctx, commentId, authorId)
	if err != nil {
		return errors.WithMessage(err, "dao.SoftDeleteComment failed")
	}
	if !deleted {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	return nil
}

// PickMostLikedReply 净赞数最高者胜出，打平取id小的。没有回复返回nil
func PickMostLikedReply(replies []*model.ReplyView) *model.ReplyView {
	var best *model.ReplyView
	var bestNet int64
	for _, r := range replies {
		net := r.LikeCount - r.DislikeCount
		if best == nil || net > bestNet || (net == bestNet && r.CommentId < best.CommentId) {
			best = r
			bestNet = net
		}
	}
	return best
}
