package model

type HealthRequest struct{}

type HealthResponse struct{}

func (HealthResponse) SuccessMessage() string {
	return "API is running"
}
