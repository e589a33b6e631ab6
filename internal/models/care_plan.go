package models

import "time"

// Care plan difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// CarePlanTask is one recurring task inside a care plan.
type CarePlanTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"` // daily, weekly, monthly or as-needed
}

// CarePlan is a curated care routine authored by admins. Members browse the
// published ones and assign them to themselves.
type CarePlan struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title          string         `json:"title" validate:"required,min=3,max=200"`
	Description    string         `json:"description" validate:"omitempty,max=1000"`
	Content        string         `json:"content"`
	Difficulty     string         `json:"difficulty" gorm:"type:varchar(20)" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration       string         `json:"duration" validate:"omitempty,max=50"`
	Published      bool           `json:"published"`
	RecommendedFor []string       `json:"recommended_for" gorm:"serializer:json"`
	Tasks          []CarePlanTask `json:"tasks" gorm:"serializer:json"`
	FeaturedImage  string         `json:"featured_image,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// CarePlanAssignment links a user to a care plan they are following.
// Progress is a percentage the client advances as tasks get done.
type CarePlanAssignment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	PlanID    string    `json:"plan_id" gorm:"type:varchar(36)" validate:"required"`
	StartDate time.Time `json:"start_date"`
	Progress  int       `json:"progress" validate:"gte=0,lte=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
