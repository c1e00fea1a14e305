package services

// ServiceContainer bundles the service facades handed to route registration,
// so handlers depend on interfaces rather than concrete services.
type ServiceContainer struct {
	Currency    CurrencySvcFacade
	Rate        RateSvcFacade
	Conversion  ConversionSvcFacade
	Transaction TransactionSvcFacade
	Auth        AuthSvcFacade
}
