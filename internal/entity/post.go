package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PostType string

const (
	PostTypeDiscussion PostType = "discussion"
	PostTypeQuestion   PostType = "question"
	PostTypeAnswer     PostType = "answer"
	PostTypeMilestone  PostType = "milestone"
	PostTypeMentorship PostType = "mentorship"
)

var PostTypes = []PostType{
	PostTypeDiscussion, PostTypeQuestion, PostTypeAnswer,
	PostTypeMilestone, PostTypeMentorship,
}

type PostStatus string

const (
	PostActive  PostStatus = "active"
	PostHidden  PostStatus = "hidden"
	PostDeleted PostStatus = "deleted"
	PostFlagged PostStatus = "flagged"
)

// Milestone is the extra payload attached to milestone posts,
// stored as a JSON column.
type Milestone struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	IsPublic    bool      `json:"isPublic"`
}

func (m *Milestone) Scan(obj any) error {
	return scanJSON(obj, m)
}

func (m Milestone) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// MentorshipRequest is the extra payload attached to mentorship posts.
type MentorshipRequest struct {
	Topic               string `json:"topic"`
	Description         string `json:"description"`
	PreferredMentorType string `json:"preferredMentorType"`
	Timeline            string `json:"timeline"`
	IsOpen              bool   `json:"isOpen"`
}

func (m *MentorshipRequest) Scan(obj any) error {
	return scanJSON(obj, m)
}

func (m MentorshipRequest) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func scanJSON(obj, target any) error {
	switch t := obj.(type) {
	case string:
		return json.Unmarshal([]byte(t), target)
	case []byte:
		return json.Unmarshal(t, target)
	case nil:
		return nil
	}

	return fmt.Errorf("cannot scan invalid data type %T", obj)
}

type Post struct {
	Base

	ThreadID string `gorm:"index"`
	Thread   Thread `gorm:"foreignKey:ThreadID"`

	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	Content string   `gorm:"size:5000"`
	Type    PostType `gorm:"size:32;index"`

	IsAcceptedAnswer  bool
	Milestone         Milestone         `gorm:"type:text"`
	MentorshipRequest MentorshipRequest `gorm:"type:text"`

	Likes    Array[string]
	Dislikes Array[string]

	Views        int
	RepliesCount int

	Status PostStatus `gorm:"size:16;index"`
	Tags   Array[string]
}
