// Package twitter wraps the two generations of the Twitter REST API
// behind a pair of authenticated client handles. The modern (v2) handle
// covers almost the whole catalog, the legacy (v1.1) handle fills the
// gaps v2 still has: media upload and location trends.
package twitter

import (
	"os"

	"twitter-gate-service/domain"
)

const (
	EnvApiKey            = "TWITTER_API_KEY"
	EnvApiSecret         = "TWITTER_API_SECRET"
	EnvAccessToken       = "TWITTER_ACCESS_TOKEN"
	EnvAccessTokenSecret = "TWITTER_ACCESS_TOKEN_SECRET"
	EnvBearerToken       = "TWITTER_BEARER_TOKEN"
)

// Credentials is the full secret set of the gateway. All five values are
// mandatory, immutable once loaded and never refreshed.
type Credentials struct {
	ApiKey            string
	ApiSecret         string
	AccessToken       string
	AccessTokenSecret string
	BearerToken       string
}

// LoadCredentials merges explicitly configured secrets with the process
// environment, configured values win. The first absent secret aborts
// loading with a ConfigurationError naming its environment variable.
func LoadCredentials(configured Credentials) (Credentials, error) {
	creds := Credentials{
		ApiKey:            firstNonEmpty(configured.ApiKey, os.Getenv(EnvApiKey)),
		ApiSecret:         firstNonEmpty(configured.ApiSecret, os.Getenv(EnvApiSecret)),
		AccessToken:       firstNonEmpty(configured.AccessToken, os.Getenv(EnvAccessToken)),
		AccessTokenSecret: firstNonEmpty(configured.AccessTokenSecret, os.Getenv(EnvAccessTokenSecret)),
		BearerToken:       firstNonEmpty(configured.BearerToken, os.Getenv(EnvBearerToken)),
	}

	required := []struct {
		value string
		name  string
	}{
		{creds.ApiKey, EnvApiKey},
		{creds.ApiSecret, EnvApiSecret},
		{creds.AccessToken, EnvAccessToken},
		{creds.AccessTokenSecret, EnvAccessTokenSecret},
		{creds.BearerToken, EnvBearerToken},
	}
	for _, secret := range required {
		if secret.value == "" {
			return Credentials{}, domain.ConfigurationError{Missing: secret.name}
		}
	}

	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
