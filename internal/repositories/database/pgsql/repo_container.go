package pgsql

import (
	portsrepo "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		OfferRepo:    newPgxOfferRepository(dbPool),
		ContactRepo:  newPgxContactRepository(dbPool),
		SettingRepo:  newPgxSettingRepository(dbPool),
		Dashboard:    newPgxDashboardRepository(dbPool),
	}
}
