package model

type GetUsersRequest struct {
	Q               string `json:"q"`
	IsMentor        string `json:"isMentor"`
	IsSeekingMentor string `json:"isSeekingMentor"`
	Expertise       string `json:"expertise"`
	Goals           string `json:"goals"`
	Interests       string `json:"interests"`
	SortBy          string `json:"sortBy"`
	Page            int    `json:"page"`
	Limit           int    `json:"limit"`
}

type GetUsersResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type SearchUsersRequest struct {
	Q         string `json:"q"`
	Expertise string `json:"expertise"`
	Goals     string `json:"goals"`
	Interests string `json:"interests"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

type SearchUsersResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type GetMentorsRequest struct {
	Expertise string `json:"expertise"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

type GetMentorsResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type GetMenteesRequest struct {
	Goals string `json:"goals"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type GetMenteesResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type UpdateReputationRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action"`
}

type UpdateReputationResponse struct {
	Reputation int `json:"reputation"`
}

func (UpdateReputationResponse) SuccessMessage() string {
	return "Reputation updated successfully"
}

type GetUserStatsRequest struct {
	ID string `json:"id"`
}

type UserStats struct {
	Reputation          int     `json:"reputation"`
	PostsCount          int     `json:"postsCount"`
	RepliesCount        int     `json:"repliesCount"`
	MilestonesCount     int     `json:"milestonesCount"`
	DaysSinceJoined     int     `json:"daysSinceJoined"`
	AvgReputationPerDay float64 `json:"avgReputationPerDay"`
}

type GetUserStatsResponse struct {
	Stats UserStats `json:"stats"`
}
