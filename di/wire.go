//go:build wireinject
// +build wireinject

package di

import (
	"hims/config"
	"hims/infras/kafka"
	"hims/infras/otel"
	"hims/infras/postgres"
	"hims/infras/redis"
	"hims/infras/s3"
	"hims/internal/events"
	"hims/transport/http"
	"hims/transport/http/middleware"
	"hims/transport/http/router"

	patientRepository "hims/internal/domains/patient/repository"
	patientService "hims/internal/domains/patient/service"
	patientHandler "hims/internal/handlers/patient"

	staffRepository "hims/internal/domains/staff/repository"
	staffService "hims/internal/domains/staff/service"
	staffHandler "hims/internal/handlers/staff"

	roomRepository "hims/internal/domains/room/repository"
	roomService "hims/internal/domains/room/service"
	roomHandler "hims/internal/handlers/room"

	roomTypePriceRepository "hims/internal/domains/roomtypeprice/repository"
	roomTypePriceService "hims/internal/domains/roomtypeprice/service"
	roomTypePriceHandler "hims/internal/handlers/roomtypeprice"

	patientMedicalInfoRepository "hims/internal/domains/patientmedicalinfo/repository"
	patientMedicalInfoService "hims/internal/domains/patientmedicalinfo/service"
	patientMedicalInfoHandler "hims/internal/handlers/patientmedicalinfo"

	uploadService "hims/internal/domains/upload/service"
	uploadHandler "hims/internal/handlers/upload"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var eventPublishing = wire.NewSet(
	events.NewPublisher,
)

var patientDomain = wire.NewSet(
	patientRepository.New,
	patientService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var roomTypePriceDomain = wire.NewSet(
	roomTypePriceRepository.New,
	roomTypePriceService.New,
)

var patientMedicalInfoDomain = wire.NewSet(
	patientMedicalInfoRepository.New,
	patientMedicalInfoService.New,
)

var uploadDomain = wire.NewSet(
	uploadService.New,
)

var domains = wire.NewSet(
	patientDomain,
	staffDomain,
	roomDomain,
	roomTypePriceDomain,
	patientMedicalInfoDomain,
	uploadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	patientHandler.New,
	staffHandler.New,
	roomHandler.New,
	roomTypePriceHandler.New,
	patientMedicalInfoHandler.New,
	uploadHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		eventPublishing,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
