package model

import "net/http"

type GetRepliesRequest struct {
	PostID string `json:"postId"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type GetRepliesResponse struct {
	Replies    []Reply    `json:"replies"`
	Pagination Pagination `json:"pagination"`
}

type GetReplyRequest struct {
	ID string `json:"id"`
}

type GetReplyResponse struct {
	Reply Reply `json:"reply"`
}

type CreateReplyRequest struct {
	PostID        string `json:"postId"`
	Content       string `json:"content"`
	Type          string `json:"type"`
	ParentReplyID string `json:"parentReplyId"`
}

type CreateReplyResponse struct {
	Reply Reply `json:"reply"`
}

func (CreateReplyResponse) SuccessMessage() string {
	return "Reply created successfully"
}

func (CreateReplyResponse) SuccessStatusCode() int {
	return http.StatusCreated
}

type UpdateReplyRequest struct {
	ID      string  `json:"id"`
	Content *string `json:"content"`
}

type UpdateReplyResponse struct {
	Reply Reply `json:"reply"`
}

func (UpdateReplyResponse) SuccessMessage() string {
	return "Reply updated successfully"
}

type DeleteReplyRequest struct {
	ID string `json:"id"`
}

type DeleteReplyResponse struct{}

func (DeleteReplyResponse) SuccessMessage() string {
	return "Reply deleted successfully"
}

type LikeReplyRequest struct {
	ID string `json:"id"`
}

type LikeReplyResponse struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`
}

type DislikeReplyRequest struct {
	ID string `json:"id"`
}

type DislikeReplyResponse struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`
}

type MarkHelpfulRequest struct {
	ID string `json:"id"`
}

type MarkHelpfulResponse struct {
	Reply Reply `json:"reply"`
}

func (MarkHelpfulResponse) SuccessMessage() string {
	return "Reply marked as helpful"
}

type UnmarkHelpfulRequest struct {
	ID string `json:"id"`
}

type UnmarkHelpfulResponse struct {
	Reply Reply `json:"reply"`
}

func (UnmarkHelpfulResponse) SuccessMessage() string {
	return "Reply unmarked as helpful"
}
