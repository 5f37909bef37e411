//go:build wireinject
// +build wireinject

package di

import (
	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/infras/postgres"
	"taskdesk/infras/redis"
	"taskdesk/infras/session"
	"taskdesk/shared/cache"
	"taskdesk/transport/http"
	"taskdesk/transport/http/middleware"
	"taskdesk/transport/http/router"

	categoryHandler "taskdesk/internal/handlers/category"
	pageHandler "taskdesk/internal/handlers/page"
	statsHandler "taskdesk/internal/handlers/stats"
	todoHandler "taskdesk/internal/handlers/todo"

	authService "taskdesk/internal/domains/auth/service"
	categoryRepository "taskdesk/internal/domains/category/repository"
	categoryService "taskdesk/internal/domains/category/service"
	statsService "taskdesk/internal/domains/stats/service"
	todoRepository "taskdesk/internal/domains/todo/repository"
	todoService "taskdesk/internal/domains/todo/service"
	userRepository "taskdesk/internal/domains/user/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	authDomain,
	todoDomain,
	categoryDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pageHandler.New,
	todoHandler.New,
	categoryHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
