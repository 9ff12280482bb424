package models

import (
	"time"
)

// UserStreak tracks consecutive days with at least one logged
// application.
type UserStreak struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	LastActivity  time.Time `json:"lastActivity" gorm:"column:last_activity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

// Bump advances the streak for an activity happening at now. Same-day
// activity is a no-op, next-day activity extends the streak, anything
// later restarts it.
func (s *UserStreak) Bump(now time.Time) {
	today := now.Truncate(24 * time.Hour)
	last := s.LastActivity.Truncate(24 * time.Hour)

	switch {
	case s.LastActivity.IsZero():
		s.CurrentStreak = 1
	case today.Equal(last):
		return
	case today.Sub(last) == 24*time.Hour:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivity = now
}
