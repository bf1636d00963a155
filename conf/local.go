package conf

// Twitter credentials may be provided in the local config; any value left
// empty here is taken from the process environment at first client
// construction.
type Local struct {
	Twitter TwitterCredentials
}

type TwitterCredentials struct {
	ApiKey            string
	ApiSecret         string
	AccessToken       string
	AccessTokenSecret string
	BearerToken       string
}
