package validators

import (
	"context"
	"testing"
)

func TestEmailDomain(t *testing.T) {
	cases := map[string]string{
		"ana@Refugio.MX":  "refugio.mx",
		"ana@refugio.mx.": "refugio.mx",
		"sin-arroba":      "",
		"ana@":            "",
	}
	for in, want := range cases {
		if got := EmailDomain(in); got != want {
			t.Errorf("EmailDomain(%q) = %q, want %q", in, got, want)
		}
	}
}

// No toca la red: todos se rechazan antes de resolver.
func TestEmailDomainResolves_RejectsWithoutLookup(t *testing.T) {
	for _, email := range []string{"ana@example.com", "ana@localhost", "ana@intranet", "ana@"} {
		if EmailDomainResolves(context.Background(), email) {
			t.Errorf("%s should be rejected", email)
		}
	}
}
