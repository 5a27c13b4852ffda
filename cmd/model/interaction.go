package model

// 互动按类型分表存储：每种事件只携带对它有意义的字段，
// 不再用一张interactions大表加字符串判别器

// Comment 顶层评论ParentId为0，回复的ParentId指向顶层评论
type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	AuthorId  int64  `gorm:"column:author_id;index" json:"author_id"`
	PostId    int64  `gorm:"column:post_id;index" json:"post_id"`
	ParentId  int64  `gorm:"column:parent_id;index;default:0" json:"parent_id"`
	Content   string `gorm:"column:content;size:352" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt string `gorm:"column:deleted_at" json:"deleted_at"`
}

// PostReaction 每个(用户,帖子)至多一行，Kind为like或dislike
type PostReaction struct {
	ReactionId int64  `gorm:"column:reaction_id;primaryKey;autoIncrement" json:"reaction_id"`
	AuthorId   int64  `gorm:"column:author_id;uniqueIndex:uk_post_reaction" json:"author_id"`
	PostId     int64  `gorm:"column:post_id;uniqueIndex:uk_post_reaction" json:"post_id"`
	Kind       string `gorm:"column:kind;size:10" json:"kind"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  string `gorm:"column:updated_at" json:"updated_at"`
}

// CommentReaction 每个(用户,评论)至多一行
type CommentReaction struct {
	ReactionId int64  `gorm:"column:reaction_id;primaryKey;autoIncrement" json:"reaction_id"`
	AuthorId   int64  `gorm:"column:author_id;uniqueIndex:uk_comment_reaction" json:"author_id"`
	CommentId  int64  `gorm:"column:comment_id;uniqueIndex:uk_comment_reaction" json:"comment_id"`
	Kind       string `gorm:"column:kind;size:10" json:"kind"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  string `gorm:"column:updated_at" json:"updated_at"`
}

// PostView 浏览行为，由MQ消费端落库
type PostView struct {
	ViewId    int64  `gorm:"column:view_id;primaryKey;autoIncrement" json:"view_id"`
	AuthorId  int64  `gorm:"column:author_id;index" json:"author_id"`
	PostId    int64  `gorm:"column:post_id;index" json:"post_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

type PostShare struct {
	ShareId   int64  `gorm:"column:share_id;primaryKey;autoIncrement" json:"share_id"`
	AuthorId  int64  `gorm:"column:author_id;index" json:"author_id"`
	PostId    int64  `gorm:"column:post_id;index" json:"post_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

// CommentView 排序后的评论视图，计数来自聚合查询
type CommentView struct {
	CommentId    int64      `json:"comment_id"`
	AuthorId     int64      `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	Content      string     `json:"content"`
	CreatedAt    string     `json:"created_at"`
	LikeCount    int64      `json:"like_count"`
	DislikeCount int64      `json:"dislike_count"`
	ReplyCount   int64      `json:"reply_count"`
	UserReaction string     `json:"user_reaction,omitempty"`
	TopReply     *ReplyView `json:"top_reply,omitempty"`
}

// ReplyView 回复视图，回复不再有下一层
type ReplyView struct {
	CommentId    int64  `json:"comment_id"`
	AuthorId     int64  `json:"author_id"`
	AuthorName   string `json:"author_name"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	UserReaction string `json:"user_reaction,omitempty"`
}
