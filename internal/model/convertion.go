package model

import (
	"time"

	"github.com/hive-community/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DefaultTimeLayout)
}

// ConvertUser maps a user entity to its API representation. Sensitive
// fields (email) are stripped unless includeSensitive is set.
func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	email := ""
	if includeSensitive {
		email = user.Email
	}

	return User{
		ID:              user.ID,
		Email:           email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Bio:             user.Bio,
		Avatar:          user.Avatar,
		Goals:           user.Goals,
		Interests:       user.Interests,
		Expertise:       user.Expertise,
		MentorInterests: user.MentorInterests,
		IsMentor:        user.IsMentor,
		IsSeekingMentor: user.IsSeekingMentor,
		Reputation:      user.Reputation,
		PostsCount:      user.PostsCount,
		RepliesCount:    user.RepliesCount,
		MilestonesCount: user.MilestonesCount,
		IsVerified:      user.IsVerified,
		LastSeen:        formatTime(user.LastSeen),
		CreatedAt:       formatTime(user.CreatedAt),
	}
}

func ConvertThread(thread *entity.Thread) Thread {
	if thread == nil {
		return Thread{}
	}

	return Thread{
		ID:           thread.ID,
		Title:        thread.Title,
		Description:  thread.Description,
		Category:     string(thread.Category),
		Type:         string(thread.Type),
		Tags:         thread.Tags,
		AuthorID:     thread.AuthorID,
		Author:       ConvertUser(&thread.Author, false),
		Status:       string(thread.Status),
		Views:        thread.Views,
		PostsCount:   thread.PostsCount,
		LastActivity: formatTime(thread.LastActivity),
		IsPrivate:    thread.IsPrivate,
		IsFeatured:   thread.IsFeatured,
		FeaturedAt:   formatTime(thread.FeaturedAt),
		CreatedAt:    formatTime(thread.CreatedAt),
		UpdatedAt:    formatTime(thread.UpdatedAt),
	}
}

func ConvertPost(post *entity.Post) Post {
	if post == nil {
		return Post{}
	}

	var milestone *Milestone
	if post.Type == entity.PostTypeMilestone {
		milestone = &Milestone{
			Title:       post.Milestone.Title,
			Description: post.Milestone.Description,
			Category:    post.Milestone.Category,
			Date:        formatTime(post.Milestone.Date),
			IsPublic:    post.Milestone.IsPublic,
		}
	}

	var mentorship *MentorshipRequest
	if post.Type == entity.PostTypeMentorship {
		mentorship = &MentorshipRequest{
			Topic:               post.MentorshipRequest.Topic,
			Description:         post.MentorshipRequest.Description,
			PreferredMentorType: post.MentorshipRequest.PreferredMentorType,
			Timeline:            post.MentorshipRequest.Timeline,
			IsOpen:              post.MentorshipRequest.IsOpen,
		}
	}

	return Post{
		ID:                post.ID,
		ThreadID:          post.ThreadID,
		AuthorID:          post.AuthorID,
		Author:            ConvertUser(&post.Author, false),
		Content:           post.Content,
		Type:              string(post.Type),
		IsAcceptedAnswer:  post.IsAcceptedAnswer,
		Milestone:         milestone,
		MentorshipRequest: mentorship,
		LikeCount:         len(post.Likes),
		DislikeCount:      len(post.Dislikes),
		Score:             len(post.Likes) - len(post.Dislikes),
		Views:             post.Views,
		RepliesCount:      post.RepliesCount,
		Status:            string(post.Status),
		Tags:              post.Tags,
		CreatedAt:         formatTime(post.CreatedAt),
		UpdatedAt:         formatTime(post.UpdatedAt),
	}
}

func ConvertReply(reply *entity.Reply) Reply {
	if reply == nil {
		return Reply{}
	}

	return Reply{
		ID:            reply.ID,
		PostID:        reply.PostID,
		AuthorID:      reply.AuthorID,
		Author:        ConvertUser(&reply.Author, false),
		ParentReplyID: reply.ParentReplyID,
		Content:       reply.Content,
		Type:          string(reply.Type),
		LikeCount:     len(reply.Likes),
		DislikeCount:  len(reply.Dislikes),
		Score:         len(reply.Likes) - len(reply.Dislikes),
		IsHelpful:     reply.IsHelpful,
		HelpfulCount:  reply.HelpfulCount,
		Status:        string(reply.Status),
		CreatedAt:     formatTime(reply.CreatedAt),
		UpdatedAt:     formatTime(reply.UpdatedAt),
	}
}
