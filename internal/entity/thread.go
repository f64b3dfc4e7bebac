package entity

import "time"

type ThreadCategory string

const (
	ThreadGeneral       ThreadCategory = "general"
	ThreadTechnology    ThreadCategory = "technology"
	ThreadCareer        ThreadCategory = "career"
	ThreadEducation     ThreadCategory = "education"
	ThreadHealth        ThreadCategory = "health"
	ThreadFinance       ThreadCategory = "finance"
	ThreadRelationships ThreadCategory = "relationships"
	ThreadHobbies       ThreadCategory = "hobbies"
	ThreadMentorship    ThreadCategory = "mentorship"
	ThreadMilestones    ThreadCategory = "milestones"
	ThreadQA            ThreadCategory = "qa"
	ThreadOther         ThreadCategory = "other"
)

var ThreadCategories = []ThreadCategory{
	ThreadGeneral, ThreadTechnology, ThreadCareer, ThreadEducation,
	ThreadHealth, ThreadFinance, ThreadRelationships, ThreadHobbies,
	ThreadMentorship, ThreadMilestones, ThreadQA, ThreadOther,
}

type ThreadType string

const (
	ThreadTypeDiscussion ThreadType = "discussion"
	ThreadTypeQA         ThreadType = "qa"
	ThreadTypeMilestone  ThreadType = "milestone"
	ThreadTypeMentorship ThreadType = "mentorship"
)

var ThreadTypes = []ThreadType{
	ThreadTypeDiscussion, ThreadTypeQA, ThreadTypeMilestone, ThreadTypeMentorship,
}

type ThreadStatus string

const (
	ThreadActive   ThreadStatus = "active"
	ThreadClosed   ThreadStatus = "closed"
	ThreadPinned   ThreadStatus = "pinned"
	ThreadArchived ThreadStatus = "archived"
	ThreadDeleted  ThreadStatus = "deleted"
)

type Thread struct {
	Base

	Title       string         `gorm:"size:200"`
	Description string         `gorm:"size:1000"`
	Category    ThreadCategory `gorm:"size:32;index"`
	Type        ThreadType     `gorm:"size:32;index"`
	Tags        Array[string]

	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	Status       ThreadStatus `gorm:"size:16;index"`
	Views        int
	PostsCount   int
	LastActivity time.Time

	IsModerated  bool
	ModeratorIDs Array[string]

	IsPrivate      bool
	AllowedUserIDs Array[string]

	IsFeatured bool
	FeaturedAt time.Time
}
