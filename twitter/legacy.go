package twitter

import (
	"context"
	"encoding/base64"
	"net/url"
	"os"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/json"
	"twitter-gate-service/domain"
)

// Legacy is the v1.1 API handle. It exists only for the operations the
// v2 API cannot perform: location trends and media upload.
type Legacy interface {
	PlaceTrends(ctx context.Context, woeid int) ([]domain.Trend, error)
	UploadMedia(ctx context.Context, path string) (string, error)
}

// LegacyClient signs every request with the user-context OAuth1 secrets,
// the v1.1 API does not accept bearer auth for these endpoints.
type LegacyClient struct {
	cli       *httpcli.Client
	apiUrl    string
	uploadUrl string
}

func NewLegacyClient(creds Credentials, config Config) *LegacyClient {
	config = config.withDefaults()

	oauthConfig := oauth1.NewConfig(creds.ApiKey, creds.ApiSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	cli := httpcli.NewWithClient(oauthConfig.Client(oauth1.NoContext, token))
	cli.GlobalRequestConfig().Timeout = config.Timeout

	return &LegacyClient{
		cli:       cli,
		apiUrl:    config.ApiUrl,
		uploadUrl: config.UploadUrl,
	}
}

func (c *LegacyClient) PlaceTrends(ctx context.Context, woeid int) ([]domain.Trend, error) {
	req := c.cli.Get(c.apiUrl + "/1.1/trends/place.json").
		QueryParams(map[string]any{"id": woeid})
	payload := make([]trendsPlacePayload, 0)
	err := c.call(ctx, req, &payload)
	if err != nil {
		return nil, err
	}

	trends := make([]domain.Trend, 0)
	if len(payload) == 0 {
		return trends, nil
	}
	for _, data := range payload[0].Trends {
		trends = append(trends, domain.Trend{
			Name:        data.Name,
			Url:         data.Url,
			Query:       data.Query,
			TweetVolume: data.TweetVolume,
		})
	}
	return trends, nil
}

// UploadMedia sends a local file through the legacy upload endpoint and
// returns the media identifier to reference from a v2 post call.
func (c *LegacyClient) UploadMedia(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithMessagef(err, "read media file '%s'", path)
	}

	form := url.Values{}
	form.Set("media_data", base64.StdEncoding.EncodeToString(content))

	req := c.cli.Post(c.uploadUrl + "/1.1/media/upload.json").
		Header("Content-Type", "application/x-www-form-urlencoded").
		RequestBody([]byte(form.Encode()))
	payload := mediaUploadPayload{}
	err = c.call(ctx, req, &payload)
	if err != nil {
		return "", err
	}
	if payload.MediaIdString == "" {
		return "", errors.Errorf("media upload of '%s' returned no media id", path)
	}

	return payload.MediaIdString, nil
}

func (c *LegacyClient) call(ctx context.Context, req *httpcli.RequestBuilder, result any) error {
	resp, err := req.Do(ctx)
	if err != nil {
		return errors.WithMessage(err, "call twitter api")
	}
	defer resp.Close()

	body, err := resp.UnsafeBody()
	if err != nil {
		return errors.WithMessage(err, "read response body")
	}
	if !resp.IsSuccess() {
		return domain.UpstreamError{
			Api:        "v1.1",
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}

	err = json.Unmarshal(body, result)
	if err != nil {
		return errors.WithMessage(err, "json unmarshal response")
	}
	return nil
}
