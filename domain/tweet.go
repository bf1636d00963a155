package domain

type Tweet struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
	AuthorId  string `json:"author_id,omitempty"`
}

type PostTweetRequest struct {
	Text       string   `json:"text"`
	MediaPaths []string `json:"media_paths,omitempty"`
	ReplyTo    string   `json:"reply_to,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type TweetIdRequest struct {
	TweetId string `json:"tweet_id"`
}

type DeleteTweetRequest struct {
	TweetId string `json:"tweet_id"`
}

type DeleteTweetResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type CreatePollRequest struct {
	Text            string   `json:"text"`
	Choices         []string `json:"choices"`
	DurationMinutes int      `json:"duration_minutes"`
}

type VoteRequest struct {
	TweetId string `json:"tweet_id"`
	Choice  string `json:"choice"`
}

type VoteResponse struct {
	TweetId string `json:"tweet_id"`
	Choice  string `json:"choice"`
	Status  string `json:"status"`
}

type LikeResponse struct {
	TweetId string `json:"tweet_id"`
	Liked   bool   `json:"liked"`
}

// BookmarkRequest accepts FolderId for compatibility with callers,
// the Twitter API has no way to address bookmark folders, so it is ignored.
type BookmarkRequest struct {
	TweetId  string `json:"tweet_id"`
	FolderId string `json:"folder_id,omitempty"`
}

type BookmarkResponse struct {
	TweetId    string `json:"tweet_id"`
	Bookmarked bool   `json:"bookmarked"`
}

type DeleteAllBookmarksResponse struct {
	Status string `json:"status"`
}
