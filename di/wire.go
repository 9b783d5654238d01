//go:build wireinject
// +build wireinject

package di

import (
	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/infras/s3"
	"agenda/permissions"
	"agenda/shared/cache"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	availabilityService "agenda/internal/domains/availability/service"
	bookingRepository "agenda/internal/domains/booking/repository"
	bookingService "agenda/internal/domains/booking/service"
	catalogRepository "agenda/internal/domains/catalog/repository"
	catalogService "agenda/internal/domains/catalog/service"
	companyRepository "agenda/internal/domains/company/repository"
	companyService "agenda/internal/domains/company/service"
	scheduleRepository "agenda/internal/domains/schedule/repository"
	scheduleService "agenda/internal/domains/schedule/service"

	availabilityHandler "agenda/internal/handlers/availability"
	bookingHandler "agenda/internal/handlers/booking"
	catalogHandler "agenda/internal/handlers/catalog"
	companyHandler "agenda/internal/handlers/company"
	scheduleHandler "agenda/internal/handlers/schedule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewIntakeLimiter,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.NewWeekly,
	scheduleRepository.NewException,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	wire.Bind(new(availabilityService.BookingSource), new(bookingService.Bookings)),
	availabilityService.New,
)

var domains = wire.NewSet(
	companyDomain,
	catalogDomain,
	scheduleDomain,
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	companyHandler.New,
	catalogHandler.New,
	scheduleHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
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
