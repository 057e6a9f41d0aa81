package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/badgerttl/ipcalc/internal/domain"
)

type API struct {
	Logger  *slog.Logger
	Service domain.CalculatorService

	authEnabled  bool
	authIssuer   string
	authAudience string
	jwks         keyfuncProvider
}

func NewAPI(logger *slog.Logger, service domain.CalculatorService) *API {
	return &API{
		Logger:  logger,
		Service: service,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/calc", a.handleCalculate)
	mux.HandleFunc("GET /api/v1/subnets", a.handleListSubnets)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
