package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

// WebhookAllowlist пропускает запросы только с адресов из списка сетей.
// Используется для эндпоинта уведомлений ЮKassa: провайдер публикует
// фиксированные диапазоны исходящих адресов.
type WebhookAllowlist struct {
	enabled  bool
	networks []netip.Prefix
	logger   Logger
}

// NewWebhookAllowlist разбирает список CIDR из конфигурации.
// При enabled=false список не проверяется и может быть пустым.
func NewWebhookAllowlist(enabled bool, cidrs []string, logger Logger) (*WebhookAllowlist, error) {
	networks := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allowed network %q: %w", cidr, err)
		}
		networks = append(networks, prefix)
	}

	return &WebhookAllowlist{
		enabled:  enabled,
		networks: networks,
		logger:   logger,
	}, nil
}

// Middleware отклоняет запросы с адресов вне списка статусом 403
func (a *WebhookAllowlist) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.enabled {
			next.ServeHTTP(w, r)
			return
		}

		addr, err := remoteAddr(r)
		if err != nil || !a.allowed(addr) {
			a.logger.Warn("WebhookAllowlist - Rejected request from %s", r.RemoteAddr)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *WebhookAllowlist) allowed(addr netip.Addr) bool {
	for _, network := range a.networks {
		if network.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteAddr(r *http.Request) (netip.Addr, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return netip.ParseAddr(host)
}
