package model

// Post 帖子：ID 创建时生成且不可变，Username 创建后不再修改，只有 Content 可被编辑
type Post struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Username string `json:"username" gorm:"type:varchar(255);not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
}

func (Post) TableName() string { return "posts" }
