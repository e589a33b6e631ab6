package models

import "time"

// Group is a community discussion group. MemberCount and PostCount are
// denormalized counters shown on the group listing; PostCount is maintained
// by the repository as posts come and go.
type Group struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	IsPrivate   bool      `json:"is_private"`
	CreatedBy   string    `json:"created_by" gorm:"type:varchar(36)"`
	MemberCount int       `json:"member_count"`
	PostCount   int       `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupPost is a message posted inside a group. Distinct from the content
// library's Post: group posts are member chatter, not curated articles.
type GroupPost struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	GroupID    string    `json:"group_id" gorm:"index;type:varchar(36)" validate:"required"`
	Content    string    `json:"content" validate:"required,max=2000"`
	AuthorID   string    `json:"author_id" gorm:"type:varchar(36)"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
