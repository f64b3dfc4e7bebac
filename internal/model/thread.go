package model

import "net/http"

type GetThreadsRequest struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Q        string `json:"q"`
	SortBy   string `json:"sortBy"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type GetThreadsResponse struct {
	Threads    []Thread   `json:"threads"`
	Pagination Pagination `json:"pagination"`
}

type GetThreadRequest struct {
	ID string `json:"id"`
}

type GetThreadResponse struct {
	Thread Thread `json:"thread"`
}

type GetFeaturedThreadsRequest struct {
	Limit int `json:"limit"`
}

type GetFeaturedThreadsResponse struct {
	Threads []Thread `json:"threads"`
}

type CreateThreadRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	Tags           []string `json:"tags"`
	IsPrivate      bool     `json:"isPrivate"`
	AllowedUserIDs []string `json:"allowedUserIds"`
}

type CreateThreadResponse struct {
	Thread Thread `json:"thread"`
}

func (CreateThreadResponse) SuccessMessage() string {
	return "Thread created successfully"
}

func (CreateThreadResponse) SuccessStatusCode() int {
	return http.StatusCreated
}

type UpdateThreadRequest struct {
	ID             string    `json:"id"`
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Category       *string   `json:"category"`
	Tags           *[]string `json:"tags"`
	Status         *string   `json:"status"`
	IsPrivate      *bool     `json:"isPrivate"`
	AllowedUserIDs *[]string `json:"allowedUserIds"`
}

type UpdateThreadResponse struct {
	Thread Thread `json:"thread"`
}

func (UpdateThreadResponse) SuccessMessage() string {
	return "Thread updated successfully"
}

type DeleteThreadRequest struct {
	ID string `json:"id"`
}

type DeleteThreadResponse struct{}

func (DeleteThreadResponse) SuccessMessage() string {
	return "Thread deleted successfully"
}
