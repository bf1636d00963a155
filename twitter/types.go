package twitter

const (
	userFields  = "id,name,username,profile_image_url,description"
	tweetFields = "id,text,created_at,author_id"
)

type userData struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageUrl string `json:"profile_image_url"`
	Description     string `json:"description"`
}

type userEnvelope struct {
	Data *userData `json:"data"`
}

type usersEnvelope struct {
	Data []userData `json:"data"`
}

type tweetData struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	AuthorId  string `json:"author_id"`
}

type tweetEnvelope struct {
	Data *tweetData `json:"data"`
}

type tweetsEnvelope struct {
	Data []tweetData `json:"data"`
}

type deletedEnvelope struct {
	Data struct {
		Deleted bool `json:"deleted"`
	} `json:"data"`
}

type likedEnvelope struct {
	Data struct {
		Liked bool `json:"liked"`
	} `json:"data"`
}

type bookmarkedEnvelope struct {
	Data struct {
		Bookmarked bool `json:"bookmarked"`
	} `json:"data"`
}

type createTweetBody struct {
	Text  string     `json:"text"`
	Reply *replyBody `json:"reply,omitempty"`
	Media *mediaBody `json:"media,omitempty"`
	Poll  *pollBody  `json:"poll,omitempty"`
}

type replyBody struct {
	InReplyToTweetId string `json:"in_reply_to_tweet_id"`
}

type mediaBody struct {
	MediaIds []string `json:"media_ids"`
}

type pollBody struct {
	Options         []string `json:"options"`
	DurationMinutes int      `json:"duration_minutes"`
}

type tweetIdBody struct {
	TweetId string `json:"tweet_id"`
}

type trendsPlacePayload struct {
	Trends []trendData `json:"trends"`
}

type trendData struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	Query       string `json:"query"`
	TweetVolume *int64 `json:"tweet_volume"`
}

type mediaUploadPayload struct {
	MediaIdString string `json:"media_id_string"`
}
