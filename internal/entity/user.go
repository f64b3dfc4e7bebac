package entity

import "time"

type User struct {
	Base

	Email    string `gorm:"uniqueIndex;size:256"`
	Password string

	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Bio       string `gorm:"size:512"`
	Avatar    string

	Goals           Array[string]
	Interests       Array[string]
	Expertise       Array[string]
	MentorInterests Array[string]

	IsMentor        bool
	IsSeekingMentor bool

	Reputation      int
	PostsCount      int
	RepliesCount    int
	MilestonesCount int

	IsActive   bool
	IsVerified bool
	LastSeen   time.Time

	ResetPasswordToken   string
	ResetPasswordExpires time.Time
}
