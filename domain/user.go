package domain

type TwitterUser struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageUrl string `json:"profile_image_url,omitempty"`
	Description     string `json:"description,omitempty"`
}

type UserIdRequest struct {
	UserId string `json:"user_id"`
}

type ScreenNameRequest struct {
	ScreenName string `json:"screen_name"`
}

// FollowListRequest is shared by all paginated follow-graph lookups.
// Count is a pointer to distinguish "not specified" from an explicit zero.
type FollowListRequest struct {
	UserId string `json:"user_id"`
	Count  *int   `json:"count,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}
