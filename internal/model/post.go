package model

import "net/http"

type GetPostsRequest struct {
	ThreadID string `json:"threadId"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type GetPostsResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type GetPostRequest struct {
	ID string `json:"id"`
}

type GetPostResponse struct {
	Post Post `json:"post"`
}

type CreatePostRequest struct {
	ThreadID          string             `json:"threadId"`
	Content           string             `json:"content"`
	Type              string             `json:"type"`
	Tags              []string           `json:"tags"`
	Milestone         *Milestone         `json:"milestone"`
	MentorshipRequest *MentorshipRequest `json:"mentorshipRequest"`
}

type CreatePostResponse struct {
	Post Post `json:"post"`
}

func (CreatePostResponse) SuccessMessage() string {
	return "Post created successfully"
}

func (CreatePostResponse) SuccessStatusCode() int {
	return http.StatusCreated
}

type UpdatePostRequest struct {
	ID      string    `json:"id"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type UpdatePostResponse struct {
	Post Post `json:"post"`
}

func (UpdatePostResponse) SuccessMessage() string {
	return "Post updated successfully"
}

type DeletePostRequest struct {
	ID string `json:"id"`
}

type DeletePostResponse struct{}

func (DeletePostResponse) SuccessMessage() string {
	return "Post deleted successfully"
}

type LikePostRequest struct {
	ID string `json:"id"`
}

type LikePostResponse struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`
}

type DislikePostRequest struct {
	ID string `json:"id"`
}

type DislikePostResponse struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
	Score        int `json:"score"`
}

type AcceptAnswerRequest struct {
	ID string `json:"id"`
}

type AcceptAnswerResponse struct {
	Post Post `json:"post"`
}

func (AcceptAnswerResponse) SuccessMessage() string {
	return "Answer accepted successfully"
}
