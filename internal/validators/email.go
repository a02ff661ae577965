package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// dominios reservados (RFC 2606) que nunca reciben correo
var reservedDomains = map[string]bool{
	"example.com": true,
	"example.org": true,
	"example.net": true,
	"test":        true,
	"invalid":     true,
	"localhost":   true,
}

// EmailDomain devuelve el dominio en minúsculas, "" si no hay.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(email[at+1:], "."))
}

// EmailDomainResolves acepta el dominio si tiene MX o, en su defecto, A/AAAA.
// Un timeout del resolver cuenta como inválido.
func EmailDomainResolves(ctx context.Context, email string) bool {
	domain := EmailDomain(email)
	if domain == "" || reservedDomains[domain] || !strings.Contains(domain, ".") {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	hosts, err := net.DefaultResolver.LookupHost(ctx, domain)
	return err == nil && len(hosts) > 0
}
