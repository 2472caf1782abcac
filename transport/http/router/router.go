package router

import (
	"hims/internal/handlers/patient"
	"hims/internal/handlers/patientmedicalinfo"
	"hims/internal/handlers/room"
	"hims/internal/handlers/roomtypeprice"
	"hims/internal/handlers/staff"
	"hims/internal/handlers/upload"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Patient            patient.Handler
	Staff              staff.Handler
	Room               room.Handler
	RoomTypePrice      roomtypeprice.Handler
	PatientMedicalInfo patientmedicalinfo.Handler
	Upload             upload.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Patient.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.RoomTypePrice.Router(routerGroup)
		r.DomainHandlers.PatientMedicalInfo.Router(routerGroup)
		r.DomainHandlers.Upload.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
