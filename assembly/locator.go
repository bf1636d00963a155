package assembly

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"twitter-gate-service/conf"
	"twitter-gate-service/controller"
	"twitter-gate-service/domain"
	"twitter-gate-service/middleware"
	"twitter-gate-service/repository"
	"twitter-gate-service/routes"
	"twitter-gate-service/service"
	"twitter-gate-service/twitter"

	"github.com/txix-open/isp-kit/log"
)

const (
	pathPrefix = "/api/twitter"
)

type Locator struct {
	logger          log.Logger
	manager         *twitter.Manager
	rateLimitMemory *repository.RateLimitMemory
}

func NewLocator(
	logger log.Logger,
	manager *twitter.Manager,
	rateLimitMemory *repository.RateLimitMemory,
) Locator {
	return Locator{
		logger:          logger,
		manager:         manager,
		rateLimitMemory: rateLimitMemory,
	}
}

func (l Locator) Handler(config conf.Remote, redisCli redis.UniversalClient) http.Handler {
	var rateLimitRepo service.RateLimitRepo = l.rateLimitMemory
	if redisCli != nil {
		rateLimitRepo = repository.NewRateLimitRedis(redisCli)
	}
	rateLimit := service.NewRateLimit(rateLimitRepo, domain.DefaultRateLimitPolicies())

	trendsCache := repository.NewTrendsCache(time.Duration(config.Caching.TrendsInSec) * time.Second)

	controllers := routes.Controllers{
		User:     controller.NewUser(service.NewUser(l.manager)),
		Tweet:    controller.NewTweet(service.NewTweet(l.manager)),
		Timeline: controller.NewTimeline(service.NewTimeline(l.manager, trendsCache, l.logger)),
	}

	mux := http.NewServeMux()
	for _, descriptor := range routes.EndpointDescriptors(controllers) {
		handler := middleware.Chain(
			descriptor.Handler,
			middleware.RequestId(),
			middleware.Logger(l.logger, config.Logging.RequestLogEnable, config.Logging.BodyLogEnable),
			middleware.ErrorHandler(l.logger),
			middleware.RateLimit(rateLimit, descriptor.Category),
		)

		entrypoint := middleware.Entrypoint(
			config.Http.MaxRequestBodySizeInMb*1024*1024, //nolint:gomnd
			handler,
			pathPrefix,
			l.logger,
		)
		mux.Handle(fmt.Sprintf("%s/%s", pathPrefix, descriptor.Endpoint), entrypoint)
	}

	return mux
}
