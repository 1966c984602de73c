// Package services defines the interfaces the page handlers consume. They
// are all implemented by the REST backend adapter; tests substitute mocks.
package services

// ServiceContainer holds instances of all the backend-facing services.
// This is the main entry point for accessing backend functionality and is
// used throughout the application, particularly in the page handlers.
type ServiceContainer struct {
	Auth         AuthSvc
	User         UserSvcFacade
	Departamento DepartamentoSvc
	Viagem       ViagemSvcFacade
	Despesa      DespesaSvcFacade
	Adiantamento AdiantamentoSvcFacade
}
