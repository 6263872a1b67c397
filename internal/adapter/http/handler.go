package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// WebsocketServer subscribes an upgraded connection to one campaign's
// events.
type WebsocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, campaign domain.Address) error
}

// Services are the use cases behind the HTTP surface.
type Services struct {
	Factory   port.FactoryUseCase
	Campaigns port.CampaignUseCase
	Reports   port.ReportUseCase
	Token     port.TokenLedger
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router.
type Handler struct {
	svc    Services
	auth   *Authenticator
	ws     WebsocketServer
	logger *slog.Logger
	dev    bool
	router chi.Router
}

// Option configures optional routes.
type Option func(*Handler)

// WithWebsocket mounts the live donation feed.
func WithWebsocket(ws WebsocketServer) Option {
	return func(h *Handler) { h.ws = ws }
}

// WithDevRoutes mounts the token faucet and the dev token issuer. Never
// enable it in production: both hand out value for free.
func WithDevRoutes() Option {
	return func(h *Handler) { h.dev = true }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, auth *Authenticator, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.With(auth.Middleware).Post("/", h.handleCreateCampaign)

			r.Route("/{ref}", func(r chi.Router) {
				r.Get("/", h.handleCampaignDetails)
				r.Get("/info", h.handleCampaignInfo)
				r.Get("/valid", h.handleIsValidCampaign)
				r.Get("/progress", h.handleProgress)
				r.Get("/remaining", h.handleRemainingTime)
				r.Get("/can-withdraw", h.handleCanWithdraw)
				r.Get("/donors", h.handleDonors)
				r.Get("/donors/{donor}", h.handleDonationAmount)

				r.Group(func(r chi.Router) {
					r.Use(auth.Middleware)
					r.Post("/deactivate", h.handleDeactivate)
					r.Post("/donations", h.handleDonate)
					r.Post("/withdraw", h.handleWithdraw)
				})
			})
		})

		r.Route("/token", func(r chi.Router) {
			r.Get("/", h.handleToken)
			r.Get("/balances/{addr}", h.handleBalance)
			r.Get("/allowances/{owner}/{spender}", h.handleAllowance)
			r.Get("/faucet/cooldown/{addr}", h.handleFaucetCooldown)
			r.With(auth.Middleware).Post("/approve", h.handleApprove)
			if h.dev {
				r.Post("/faucet", h.handleFaucet)
			}
		})

		r.Get("/reports/campaigns", h.handleCampaignReport)

		if h.ws != nil {
			r.Get("/ws/campaigns/{ref}", h.handleCampaignFeed)
		}
		if h.dev {
			r.Post("/auth/dev-token", h.handleDevToken)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
