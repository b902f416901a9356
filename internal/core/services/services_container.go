package services

import (
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/mailer"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/whatsapp"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	resetMailer := mailer.NewMailer(cfg.BrevoAPIKey, cfg.Business.Name, cfg.EmailSender)

	container.User = NewUserService(repos.UserRepo, resetMailer, UserServiceConfig{
		JWTSecret:        cfg.JWTSecret,
		JWTIssuer:        cfg.JWTIssuer,
		JWTExpiry:        cfg.JWTExpiryDuration,
		ResetTokenExpiry: cfg.ResetTokenExpiry,
		FrontendResetURL: cfg.FrontendResetURL,
	})

	container.Category = NewCategoryService(repos.CategoryRepo)

	container.Product = NewProductService(repos.ProductRepo, whatsapp.BusinessInfo{
		Name:    cfg.Business.Name,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.WhatsAppPhone,
	})

	container.Customer = NewCustomerService(repos.CustomerRepo)

	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, InvoiceBusinessInfo{
		Name:    cfg.Business.Name,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.Phone,
		Email:   cfg.Business.Email,
		GSTIN:   cfg.Business.GSTIN,
	}, cfg.InvoicePrefix)

	container.Offer = NewOfferService(repos.OfferRepo)
	container.Contact = NewContactService(repos.ContactRepo)
	container.Settings = NewSettingsService(repos.SettingRepo)
	container.Dashboard = NewDashboardService(repos.Dashboard, repos.InvoiceRepo, repos.CustomerRepo)

	return container
}
