package domain

// TimelineRequest is shared by the home timeline operations.
// SeenTweetIds is accepted for forward compatibility and is not used.
type TimelineRequest struct {
	Count        *int     `json:"count,omitempty"`
	SeenTweetIds []string `json:"seen_tweet_ids,omitempty"`
	Cursor       string   `json:"cursor,omitempty"`
}

type UserTimelineRequest struct {
	UserId string `json:"user_id"`
	Count  *int   `json:"count,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type SearchRequest struct {
	Query   string `json:"query"`
	Product string `json:"product,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Cursor  string `json:"cursor,omitempty"`
}

type TrendsRequest struct {
	Category string `json:"category,omitempty"`
	Count    *int   `json:"count,omitempty"`
}

// Trend keeps the shape of the v1.1 trends payload. Category is absent
// from the current payloads, the field only exists for the local filter.
type Trend struct {
	Name        string `json:"name"`
	Url         string `json:"url,omitempty"`
	Query       string `json:"query,omitempty"`
	TweetVolume *int64 `json:"tweet_volume,omitempty"`
	Category    string `json:"category,omitempty"`
}
