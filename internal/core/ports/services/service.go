package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User      UserSvcFacade
	Category  CategorySvcFacade
	Product   ProductSvcFacade
	Customer  CustomerSvcFacade
	Invoice   InvoiceSvcFacade
	Offer     OfferSvcFacade
	Contact   ContactSvcFacade
	Settings  SettingsSvcFacade
	Dashboard DashboardSvcFacade
}
