// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Provider identifies a third-party communication platform.
type Provider string

const (
	ProviderSlack   Provider = "slack"
	ProviderGmail   Provider = "gmail"
	ProviderOutlook Provider = "outlook"
	ProviderTeams   Provider = "teams"
	ProviderZoom    Provider = "zoom"
)

// ErrUnknownProvider is returned when a provider string is outside the closed set.
var ErrUnknownProvider = errors.New("unknown provider")

// AllProviders lists every supported provider in display order.
func AllProviders() []Provider {
	return []Provider{ProviderSlack, ProviderGmail, ProviderOutlook, ProviderTeams, ProviderZoom}
}

// ParseProvider converts a route or query value into a Provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Wrapf(ErrUnknownProvider, "%q", s)
	}

	return p, nil
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderSlack, ProviderGmail, ProviderOutlook, ProviderTeams, ProviderZoom:
		return true
	default:
		return false
	}
}

func (p Provider) String() string {
	return string(p)
}
