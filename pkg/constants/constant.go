package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// 分页默认值
	DefaultCommentLimit = 10
	DefaultReplyLimit   = 0 // 0表示不分页，返回全部回复
	DefaultFeedSize     = 10
	MaxPageSize         = 100

	// 评论内容限制
	MaxCommentLength = 300
	MinCommentLength = 1

	// 帖子限制
	MaxTitleLength    = 255
	MaxOptionalTags   = 5
	MaxImagesPerPost  = 5
	ActivationExpiry  = 3600 // 未激活账户的存活秒数
	ActivationCodeLen = 6
	MinPasswordLength = 8
)

// Interaction wire literals. 存储层按类型分表，这些字符串只出现在API边界
const (
	InteractionLikePost       = "like_post"
	InteractionDislikePost    = "dislike_post"
	InteractionCommentPost    = "comment_post"
	InteractionReplyComment   = "reply_comment"
	InteractionLikeComment    = "like_comment"
	InteractionDislikeComment = "dislike_comment"
	InteractionViewPost       = "view_post"
	InteractionSharePost      = "share_post"
)

// Reaction kinds as stored
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Report / moderation
const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"

	ReportTypeUser    = "user"
	ReportTypePost    = "post"
	ReportTypeComment = "comment"

	ModActionBan        = "ban"
	ModActionMute       = "mute"
	ModActionWarn       = "warn"
	ModActionDeletePost = "delete_post"

	PowerModerator = 1
)

// AllowedCategories 帖子的主分类与可选分类都必须取自这里
var AllowedCategories = []string{
	"Breastfeeding",
	"Infant sleep",
	"First steps",
	"School age",
	"ADHD",
	"Autism",
	"Allergies",
	"Cold and flu",
	"Kids cooking",
	"Picky eating",
	"Tantrums",
	"Bullying",
	"Drawing",
	"Music",
	"Reading",
	"Storytelling",
	"Video games",
	"Social media",
	"Screen time",
	"Boundaries",
	"Allowance",
	"Chores",
	"Divorce",
	"Siblings",
	"Grandparents",
	"Adoption",
	"Cyberbullying",
	"Sexuality",
	"Puberty",
	"Teenage years",
}

// IsAllowedCategory 检查分类是否合法
func IsAllowedCategory(tag string) bool {
	for _, c := range AllowedCategories {
		if c == tag {
			return true
		}
	}
	return false
}
