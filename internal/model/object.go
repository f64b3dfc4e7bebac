package model

type AccessToken struct {
	ID    string `json:"id" mapstructure:"id"`
	Email string `json:"email" mapstructure:"email"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar"`

	Goals           []string `json:"goals"`
	Interests       []string `json:"interests"`
	Expertise       []string `json:"expertise"`
	MentorInterests []string `json:"mentorInterests"`

	IsMentor        bool `json:"isMentor"`
	IsSeekingMentor bool `json:"isSeekingMentor"`

	Reputation      int `json:"reputation"`
	PostsCount      int `json:"postsCount"`
	RepliesCount    int `json:"repliesCount"`
	MilestonesCount int `json:"milestonesCount"`

	IsVerified bool   `json:"isVerified"`
	LastSeen   string `json:"lastSeen"`
	CreatedAt  string `json:"createdAt"`
}

type Thread struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`

	AuthorID string `json:"authorId"`
	Author   User   `json:"author"`

	Status       string `json:"status"`
	Views        int    `json:"views"`
	PostsCount   int    `json:"postsCount"`
	LastActivity string `json:"lastActivity"`

	IsPrivate  bool   `json:"isPrivate"`
	IsFeatured bool   `json:"isFeatured"`
	FeaturedAt string `json:"featuredAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	IsPublic    bool   `json:"isPublic"`
}

type MentorshipRequest struct {
	Topic               string `json:"topic"`
	Description         string `json:"description"`
	PreferredMentorType string `json:"preferredMentorType"`
	Timeline            string `json:"timeline"`
	IsOpen              bool   `json:"isOpen"`
}

type Post struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`

	AuthorID string `json:"authorId"`
	Author   User   `json:"author"`

	Content string `json:"content"`
	Type    string `json:"type"`

	IsAcceptedAnswer  bool               `json:"isAcceptedAnswer"`
	Milestone         *Milestone         `json:"milestone,omitempty"`
	MentorshipRequest *MentorshipRequest `json:"mentorshipRequest,omitempty"`

	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`

	Views        int `json:"views"`
	RepliesCount int `json:"repliesCount"`

	Status string   `json:"status"`
	Tags   []string `json:"tags"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Reply struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`

	AuthorID string `json:"authorId"`
	Author   User   `json:"author"`

	ParentReplyID string `json:"parentReplyId,omitempty"`

	Content string `json:"content"`
	Type    string `json:"type"`

	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`

	IsHelpful    bool `json:"isHelpful"`
	HelpfulCount int  `json:"helpfulCount"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
