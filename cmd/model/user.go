package model

// User 认证身份，密码等敏感字段不参与JSON序列化
type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName  string `gorm:"column:user_name;uniqueIndex;size:50" json:"user_name"`
	Email     string `gorm:"column:email;uniqueIndex;size:100" json:"email"`
	Password  string `gorm:"column:password;size:255" json:"-"`
	Power     int64  `gorm:"column:power;default:0" json:"power"`
	Active    bool   `gorm:"column:active;default:false" json:"active"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt string `gorm:"column:deleted_at" json:"deleted_at"`
}

// UserProfile 展示信息，与User一一对应。Post和各类互动都引用ProfileId而非UserId
type UserProfile struct {
	ProfileId   int64  `gorm:"column:profile_id;primaryKey;autoIncrement" json:"profile_id"`
	UserId      int64  `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	DisplayName string `gorm:"column:display_name;size:50" json:"display_name"`
	Bio         string `gorm:"column:bio;size:300" json:"bio"`
	IconUrl     string `gorm:"column:icon_url" json:"icon_url"`
	BannerUrl   string `gorm:"column:banner_url" json:"banner_url"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string `gorm:"column:updated_at" json:"updated_at"`
}
