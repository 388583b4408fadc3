package services

// ServiceContainer holds instances of all the application services.
// It is used by the handlers to reach the core.
type ServiceContainer struct {
	Deal          DealSvcFacade
	DealValidator DealValidatorSvc
}
