package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDiscoverySource = "google"
	DefaultStemLevel       = "beginner"
)

type UserProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`

	FullName string `gorm:"size:100" json:"full_name"`
	Age      int    `json:"age"`

	// Catalog references are plain FKs so deleting a catalog row never
	// touches profiles.
	Interests    []*LearningDomain     `gorm:"many2many:user_profile_interests;" json:"interests,omitempty"`
	MotivationID *uint                 `json:"motivation"`
	Motivation   *LearningMotivation   `gorm:"foreignKey:MotivationID" json:"-"`
	DailyGoalID  *uint                 `json:"daily_goal"`
	DailyGoal    *LearningPeriodTarget `gorm:"foreignKey:DailyGoalID" json:"-"`

	DiscoverySource string `gorm:"size:20;default:'google'" json:"discovery_source"`
	StemLevel       string `gorm:"size:20;default:'beginner'" json:"stem_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DiscoverySources() []string {
	return []string{"google", "facebook", "tiktok", "playstore", "tv"}
}

func StemLevels() []string {
	return []string{"beginner", "intermediate", "advanced"}
}
