package twitter

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"twitter-gate-service/domain"
)

type fakeModern struct {
	Modern
}

type fakeLegacy struct {
	Legacy
}

func testCredentials() Credentials {
	return Credentials{
		ApiKey:            "key",
		ApiSecret:         "secret",
		AccessToken:       "token",
		AccessTokenSecret: "token-secret",
		BearerToken:       "bearer",
	}
}

func TestManagerBuildsOnceUnderConcurrency(t *testing.T) {
	require := require.New(t)

	builds := int64(0)
	builder := func(creds Credentials, config Config) (Modern, Legacy) {
		atomic.AddInt64(&builds, 1)
		return fakeModern{}, fakeLegacy{}
	}
	manager := NewManager(testCredentials(), Config{}, builder)

	wg := sync.WaitGroup{}
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			modern, legacy, err := manager.Clients(context.Background())
			require.NoError(err)
			require.NotNil(modern)
			require.NotNil(legacy)
		}()
	}
	wg.Wait()

	require.EqualValues(1, atomic.LoadInt64(&builds))
}

func TestManagerCachesConfigurationError(t *testing.T) {
	require := require.New(t)
	clearCredentialEnv(t)

	builds := int64(0)
	builder := func(creds Credentials, config Config) (Modern, Legacy) {
		atomic.AddInt64(&builds, 1)
		return fakeModern{}, fakeLegacy{}
	}
	manager := NewManager(Credentials{}, Config{}, builder)

	for i := 0; i < 3; i++ {
		_, _, err := manager.Clients(context.Background())
		configErr := domain.ConfigurationError{}
		require.ErrorAs(err, &configErr)
	}
	require.EqualValues(0, atomic.LoadInt64(&builds))
}

func TestLoadCredentialsNamesMissingVariable(t *testing.T) {
	require := require.New(t)
	clearCredentialEnv(t)
	t.Setenv(EnvApiKey, "key")
	t.Setenv(EnvApiSecret, "secret")
	t.Setenv(EnvAccessToken, "token")
	t.Setenv(EnvBearerToken, "bearer")

	_, err := LoadCredentials(Credentials{})

	configErr := domain.ConfigurationError{}
	require.ErrorAs(err, &configErr)
	require.EqualValues(EnvAccessTokenSecret, configErr.Missing)
	require.Contains(err.Error(), EnvAccessTokenSecret)
}

func TestLoadCredentialsConfiguredValuesWin(t *testing.T) {
	require := require.New(t)
	clearCredentialEnv(t)
	t.Setenv(EnvApiKey, "env-key")
	t.Setenv(EnvApiSecret, "env-secret")
	t.Setenv(EnvAccessToken, "env-token")
	t.Setenv(EnvAccessTokenSecret, "env-token-secret")
	t.Setenv(EnvBearerToken, "env-bearer")

	creds, err := LoadCredentials(Credentials{ApiKey: "configured-key"})

	require.NoError(err)
	require.EqualValues("configured-key", creds.ApiKey)
	require.EqualValues("env-secret", creds.ApiSecret)
}

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvApiKey, EnvApiSecret, EnvAccessToken, EnvAccessTokenSecret, EnvBearerToken,
	} {
		t.Setenv(name, "")
	}
}
