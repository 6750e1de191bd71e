package service

import (
	adminhandlers "github.com/adearn/adearn/internal/handlers/admin"
	adshandlers "github.com/adearn/adearn/internal/handlers/ads"
	"github.com/adearn/adearn/internal/handlers/auth"
	ledgerhandlers "github.com/adearn/adearn/internal/handlers/ledger"
	profilehandlers "github.com/adearn/adearn/internal/handlers/profile"

	pkgauth "github.com/adearn/adearn/pkg/auth"
	"github.com/adearn/adearn/pkg/notify"

	"github.com/adearn/adearn/internal/pg"
	"github.com/adearn/adearn/internal/repo"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/authservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
)

type Services struct {
	AuthService    auth.Service
	ProfileService profilehandlers.Service
	AdsService     adshandlers.Service
	LedgerService  ledgerhandlers.Service

	AdminAccountService adminhandlers.AccountService
	AdminLedgerService  adminhandlers.LedgerService
	AdminAdService      adminhandlers.AdService
}

func New(repo *repo.Repositories, txManager pg.TXManager, broker *notify.Broker) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.Withdrawal, txManager, broker)
	authService := authservice.New(repo.AuthRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	accountService := accountservice.New(repo.ProfileRepo)
	adService := adservice.New(repo.AdRepo, repo.ViewerRepo, ledgerService)

	return &Services{
		AuthService:    authService,
		ProfileService: accountService,
		AdsService:     adService,
		LedgerService:  ledgerService,

		AdminAccountService: accountService,
		AdminLedgerService:  ledgerService,
		AdminAdService:      adService,
	}
}
