package repo

import (
	"github.com/adearn/adearn/internal/pg"
	accountrepo "github.com/adearn/adearn/internal/repo/account-repo"
	adrepo "github.com/adearn/adearn/internal/repo/ad-repo"
	withdrawalrepo "github.com/adearn/adearn/internal/repo/withdrawal-repo"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/authservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
)

type Repositories struct {
	AuthRepo    authservice.Repo
	ProfileRepo accountservice.Repo
	LedgerRepo  ledgerservice.AccountRepo
	ViewerRepo  adservice.AccountRepo
	Withdrawal  ledgerservice.WithdrawalRepo
	AdRepo      adservice.Repo
}

func New(conn pg.Database) *Repositories {
	accountRepo := accountrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)
	adRepo := adrepo.New(conn)

	return &Repositories{
		AuthRepo:    accountRepo,
		ProfileRepo: accountRepo,
		LedgerRepo:  accountRepo,
		ViewerRepo:  accountRepo,
		Withdrawal:  withdrawalRepo,
		AdRepo:      adRepo,
	}
}
