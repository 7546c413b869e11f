package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"rating/config"
	"rating/internal/delivery"
	apimiddleware "rating/internal/delivery/api/middleware"
	"rating/internal/delivery/api/router"
	"rating/internal/delivery/api/validator"
	"rating/internal/delivery/middleware"
	"rating/internal/domain/lifecycle"
	"rating/internal/errors"
	"rating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// EchoParams holds what the HTTP pipeline needs, independent of lifecycle.
type EchoParams struct {
	fx.In

	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Collector
	RouterParams router.RouterParams
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc   fx.Lifecycle
	Echo EchoParams
}

// NewEcho builds the configured echo instance with middleware and routes.
func NewEcho(params EchoParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// 4. Metrics resolves handler errors into responses, so it sits inside the logger
	metricsMiddleware := apimiddleware.NewMetricsMiddleware(params.Metrics)
	e.Use(metricsMiddleware.Handle)

	// 5. CORS middleware
	e.Use(echomiddleware.CORS())

	// 6. Request body size limit
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// 7. Per-IP rate limit
	if rl := params.Cfg.HTTP.RateLimit; rl != nil && rl.RequestsPerSecond > 0 {
		e.Use(echomiddleware.RateLimiterWithConfig(rateLimiterConfig(rl)))
	}

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)

	return e
}

func rateLimiterConfig(rl *config.RateLimitConfig) echomiddleware.RateLimiterConfig {
	return echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path

			return path == "/health" || path == "/metrics"
		},
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(rl.RequestsPerSecond),
			Burst: rl.Burst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests)
		},
	}
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Echo.Cfg,
		logger: params.Echo.Logger,
		server: NewEcho(params.Echo),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
