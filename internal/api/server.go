package api

import (
	"context"
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nguyentantai21042004/verba/internal/config"
	"github.com/nguyentantai21042004/verba/internal/logger"
)

// NewServer builds the echo server with middleware and h's routes.
func NewServer(h *Handler, cfg config.ServerConfig, log logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug(c.Request().Context(), "%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return AllowOrigin(origin, cfg.AllowedOrigins, cfg.AllowLocalNetwork), nil
		},
		AllowCredentials: true,
	}))
	if cfg.MaxUploadSize != "" {
		e.Use(middleware.BodyLimit(cfg.MaxUploadSize))
	}

	h.RegisterRoutes(e)

	log.Debug(context.Background(), "HTTP routes registered: %d", len(e.Routes()))
	return e
}

// AllowOrigin reports whether a browser origin may call the API. Besides the
// configured list, localNetwork admits loopback hosts and private LAN
// addresses so the app can be opened from another device on the network.
func AllowOrigin(origin string, allowed []string, localNetwork bool) bool {
	if slices.Contains(allowed, origin) || slices.Contains(allowed, "*") {
		return true
	}
	if !localNetwork {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
}
