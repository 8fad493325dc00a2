package dto

// FeedJob is one listing from the external remote-jobs API.
type FeedJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"candidate_required_location"`
	JobType     string `json:"job_type"`
	URL         string `json:"url"`
}

// FeedResponse degrades gracefully: on upstream failure Jobs is empty and
// Warning explains why.
type FeedResponse struct {
	Jobs    []FeedJob `json:"jobs"`
	Warning string    `json:"warning,omitempty"`
}
