package conf

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/rc/schema"
	"github.com/txix-open/jsonschema"
)

func init() {
	schema.CustomGenerators.Register("logLevel", func(field reflect.StructField, t *jsonschema.Schema) {
		t.Type = "string"
		t.Enum = []interface{}{"debug", "info", "error", "fatal"}
	})
}

type Remote struct {
	Redis   *Redis  `schema:"Настройки Redis,обязательно, если счётчики ограничений должны быть общими для нескольких реплик"`
	Http    Http    `schema:"Настройки HTTP"`
	Logging Logging `schema:"Настройки логирования"`
	Twitter Twitter `schema:"Настройки Twitter API"`
	Caching Caching `schema:"Настройки кеширования"`
}

type Http struct {
	MaxRequestBodySizeInMb int64 `valid:"required" schema:"Максимальная длинна тела запроса,в мегабайтах"`
}

type Logging struct {
	LogLevel         log.Level `schemaGen:"logLevel" schema:"Уровень логирования,логирование запросов осуществляется на уровне debug"`
	RequestLogEnable bool      `schema:"Включить логирование запросов"`
	BodyLogEnable    bool      `schema:"Включить логирование тел запросов и ответов,должно быть включено логирование запросов"`
}

type Twitter struct {
	ApiUrl              string `schema:"Адрес Twitter API,по умолчанию https://api.twitter.com"`
	UploadApiUrl        string `schema:"Адрес Twitter API загрузки медиа,по умолчанию https://upload.twitter.com"`
	RequestTimeoutInSec int    `valid:"required" schema:"Таймаут запросов к Twitter API,в секундах"`
}

type Caching struct {
	TrendsInSec int `valid:"required" schema:"Время кеширования трендов,в секундах"`
}

type Redis struct {
	Address  string         `schema:"Адрес,обязателено, если sentinel не указан"`
	Username string         `schema:"Имя пользовтаеля"`
	Password string         `schema:"Пароль"`
	Sentinel *RedisSentinel `schema:"Настройки sentinel,обязательно, если address не указан"`
}

type RedisSentinel struct {
	Addresses  []string `valid:"required" schema:"Адреса нод в кластере"`
	MasterName string   `valid:"required" schema:"Имя мастера"`
	Username   string   `schema:"Имя пользовтаеля в sentinel"`
	Password   string   `schema:"Пароль в sentinel"`
}

func (r Remote) Validate() error {
	if r.Redis != nil && r.Redis.Sentinel == nil && r.Redis.Address == "" {
		return errors.New("invalid redis config. sentinel or address are required")
	}
	return nil
}
