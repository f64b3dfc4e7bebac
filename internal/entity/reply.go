package entity

type ReplyType string

const (
	ReplyTypeReply   ReplyType = "reply"
	ReplyTypeAnswer  ReplyType = "answer"
	ReplyTypeComment ReplyType = "comment"
)

var ReplyTypes = []ReplyType{ReplyTypeReply, ReplyTypeAnswer, ReplyTypeComment}

type ReplyStatus string

const (
	ReplyActive  ReplyStatus = "active"
	ReplyHidden  ReplyStatus = "hidden"
	ReplyDeleted ReplyStatus = "deleted"
	ReplyFlagged ReplyStatus = "flagged"
)

type Reply struct {
	Base

	PostID string `gorm:"index"`
	Post   Post   `gorm:"foreignKey:PostID"`

	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	ParentReplyID string `gorm:"index"`

	Content string    `gorm:"size:2000"`
	Type    ReplyType `gorm:"size:32"`

	Likes    Array[string]
	Dislikes Array[string]

	IsHelpful    bool
	HelpfulCount int

	Status ReplyStatus `gorm:"size:16;index"`
}
