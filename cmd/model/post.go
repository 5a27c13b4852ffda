package model

type Post struct {
	PostId       int64  `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	AuthorId     int64  `gorm:"column:author_id;index" json:"author_id"`
	Title        string `gorm:"column:title;size:255" json:"title"`
	Content      string `gorm:"column:content;type:text" json:"content"`
	Tag          string `gorm:"column:tag;size:32" json:"tag"`
	OptionalTags string `gorm:"column:optional_tags;size:255" json:"optional_tags"`
	ImageUrls    string `gorm:"column:image_urls;type:text" json:"image_urls"` // JSON数组字符串
	CreatedAt    string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    string `gorm:"column:deleted_at" json:"deleted_at"`
}

// PostSummary 列表页视图，带点赞数用于热榜排序
type PostSummary struct {
	PostId     int64  `json:"post_id"`
	AuthorId   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Title      string `json:"title"`
	Tag        string `json:"tag"`
	LikeCount  int64  `json:"like_count"`
	CreatedAt  string `json:"created_at"`
}

// PostDetail 帖子详情视图，聚合作者与计数信息
type PostDetail struct {
	Post          *Post    `json:"post"`
	AuthorName    string   `json:"author_name"`
	AuthorIcon    string   `json:"author_icon"`
	Images        []string `json:"images"`
	LikeCount     int64    `json:"like_count"`
	DislikeCount  int64    `json:"dislike_count"`
	ShareCount    int64    `json:"share_count"`
	ViewCount     int64    `json:"view_count"`
	UserReaction  string   `json:"user_reaction,omitempty"`
	TotalComments int64    `json:"total_comments"`
	NextOffset    int64    `json:"next_offset"`
}
