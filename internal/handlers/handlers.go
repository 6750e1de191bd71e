package handlers

import (
	"net/http"

	_ "github.com/adearn/adearn/docs"
	adminhandlers "github.com/adearn/adearn/internal/handlers/admin"
	adshandlers "github.com/adearn/adearn/internal/handlers/ads"
	authhandlers "github.com/adearn/adearn/internal/handlers/auth"
	ledgerhandlers "github.com/adearn/adearn/internal/handlers/ledger"
	profilehandlers "github.com/adearn/adearn/internal/handlers/profile"
	"github.com/adearn/adearn/internal/service"
	"github.com/adearn/adearn/pkg/auth"
	"github.com/adearn/adearn/pkg/metrics"
	"github.com/adearn/adearn/pkg/notify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetReferral(w http.ResponseWriter, r *http.Request)
}

type AdsHandler interface {
	ListAds(w http.ResponseWriter, r *http.Request)
	CompleteView(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListAccounts(w http.ResponseWriter, r *http.Request)
	BlockAccount(w http.ResponseWriter, r *http.Request)
	UnblockAccount(w http.ResponseWriter, r *http.Request)
	AddBonus(w http.ResponseWriter, r *http.Request)
	ResetPoints(w http.ResponseWriter, r *http.Request)
	CreateAd(w http.ResponseWriter, r *http.Request)
	UpdateAd(w http.ResponseWriter, r *http.Request)
	DeleteAd(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ProfileHandler ProfileHandler
	AdsHandler     AdsHandler
	LedgerHandler  LedgerHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services, broker *notify.Broker, referralBaseURL string) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ProfileHandler: profilehandlers.New(s.ProfileService, referralBaseURL),
		AdsHandler:     adshandlers.New(s.AdsService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService, broker),
		AdminHandler:   adminhandlers.New(s.AdminAccountService, s.AdminLedgerService, s.AdminAdService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/password", h.AuthHandler.ChangePassword)
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.ProfileHandler.GetProfile)
				r.Put("/", h.ProfileHandler.UpdateProfile)
			})
			r.Get("/referral", h.ProfileHandler.GetReferral)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.GetBalance)
				r.Get("/events", h.LedgerHandler.Events)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.LedgerHandler.CreateWithdrawal)
				r.Get("/", h.LedgerHandler.GetWithdrawals)
			})
		})
	})

	r.Route("/api/ads", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/", h.AdsHandler.ListAds)
		r.Post("/{adID}/complete", h.AdsHandler.CompleteView)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Get("/users", h.AdminHandler.ListAccounts)
		r.Post("/users/{id}/block", h.AdminHandler.BlockAccount)
		r.Post("/users/{id}/unblock", h.AdminHandler.UnblockAccount)
		r.Post("/users/{id}/bonus", h.AdminHandler.AddBonus)
		r.Post("/users/{id}/reset", h.AdminHandler.ResetPoints)
		r.Post("/ads", h.AdminHandler.CreateAd)
		r.Put("/ads/{id}", h.AdminHandler.UpdateAd)
		r.Delete("/ads/{id}", h.AdminHandler.DeleteAd)
		r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
		r.Post("/withdrawals/{id}/approve", h.AdminHandler.ApproveWithdrawal)
		r.Post("/withdrawals/{id}/reject", h.AdminHandler.RejectWithdrawal)
	})

	return r
}
