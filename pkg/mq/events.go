package mq

// ViewEvent 帖子被打开时投递，消费端落库计数
type ViewEvent struct {
	PostId    int64 `json:"post_id"`
	UserId    int64 `json:"user_id"`
	Timestamp int64 `json:"timestamp"`
}

// ShareEvent 分享行为事件
type ShareEvent struct {
	PostId    int64 `json:"post_id"`
	UserId    int64 `json:"user_id"`
	Timestamp int64 `json:"timestamp"`
}
