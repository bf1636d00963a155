package assembly

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"twitter-gate-service/conf"
	"twitter-gate-service/repository"
	"twitter-gate-service/twitter"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/app"
	"github.com/txix-open/isp-kit/bootstrap"
	"github.com/txix-open/isp-kit/cluster"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/log"
)

type Assembly struct {
	boot        *bootstrap.Bootstrap
	server      *http.Server
	logger      *log.Adapter
	redisCli    redis.UniversalClient
	credentials twitter.Credentials

	// both survive remote config upgrades: the manager keeps the single
	// constructed client pair, the memory store keeps window counters
	manager         *twitter.Manager
	rateLimitMemory *repository.RateLimitMemory
}

func New(boot *bootstrap.Bootstrap) (*Assembly, error) {
	server := http.NewServer(boot.App.Logger())

	localConfig := conf.Local{}
	err := boot.App.Config().Read(&localConfig)
	if err != nil {
		return nil, errors.WithMessage(err, "read local config")
	}

	return &Assembly{
		boot:   boot,
		server: server,
		logger: boot.App.Logger(),
		credentials: twitter.Credentials{
			ApiKey:            localConfig.Twitter.ApiKey,
			ApiSecret:         localConfig.Twitter.ApiSecret,
			AccessToken:       localConfig.Twitter.AccessToken,
			AccessTokenSecret: localConfig.Twitter.AccessTokenSecret,
			BearerToken:       localConfig.Twitter.BearerToken,
		},
		rateLimitMemory: repository.NewRateLimitMemory(),
	}, nil
}

func (a *Assembly) ReceiveConfig(ctx context.Context, remoteConfig []byte) error {
	var (
		newCfg  conf.Remote
		prevCfg conf.Remote
	)
	err := a.boot.RemoteConfig.Upgrade(remoteConfig, &newCfg, &prevCfg)
	if err != nil {
		a.logger.Fatal(ctx, errors.WithMessage(err, "upgrade remote config"))
	}
	err = newCfg.Validate()
	if err != nil {
		a.logger.Fatal(ctx, errors.WithMessage(err, "invalid remote config"))
	}

	a.logger.SetLevel(newCfg.Logging.LogLevel)

	var newRedisCli redis.UniversalClient
	if newCfg.Redis != nil {
		newRedisCli = a.redisClient(*newCfg.Redis)
	}

	// the client pair lives for the whole process, later config upgrades
	// do not rebuild it
	if a.manager == nil {
		a.manager = twitter.NewManager(a.credentials, twitter.Config{
			ApiUrl:    newCfg.Twitter.ApiUrl,
			UploadUrl: newCfg.Twitter.UploadApiUrl,
			Timeout:   time.Duration(newCfg.Twitter.RequestTimeoutInSec) * time.Second,
		}, twitter.DefaultBuilder)
	}

	locator := NewLocator(a.logger, a.manager, a.rateLimitMemory)
	handler := locator.Handler(newCfg, newRedisCli)

	a.server.Upgrade(handler)

	if a.redisCli != nil {
		_ = a.redisCli.Close()
	}
	a.redisCli = newRedisCli

	return nil
}

func (a *Assembly) Runners() []app.Runner {
	eventHandler := cluster.NewEventHandler().
		RemoteConfigReceiver(a)

	return []app.Runner{
		app.RunnerFunc(func(ctx context.Context) error {
			return a.server.ListenAndServe(a.boot.BindingAddress)
		}),
		app.RunnerFunc(func(ctx context.Context) error {
			return a.boot.ClusterCli.Run(ctx, eventHandler)
		}),
	}
}

func (a *Assembly) Closers() []app.Closer {
	return []app.Closer{
		a.boot.ClusterCli,
		app.CloserFunc(func() error {
			return a.server.Shutdown(context.Background())
		}),
		app.CloserFunc(func() error {
			if a.redisCli != nil {
				return a.redisCli.Close()
			}
			return nil
		}),
	}
}

func (a *Assembly) redisClient(config conf.Redis) redis.UniversalClient {
	if config.Sentinel != nil {
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       config.Sentinel.MasterName,
			SentinelAddrs:    config.Sentinel.Addresses,
			SentinelUsername: config.Sentinel.Username,
			SentinelPassword: config.Sentinel.Password,
			Username:         config.Username,
			Password:         config.Password,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Username: config.Username,
		Password: config.Password,
	})
}
