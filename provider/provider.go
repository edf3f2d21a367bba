// Package provider manages built-in and custom scheme providers.
package provider

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/provider/custom"
	"github.com/swatch-cli/swatch/scheme"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/where"
)

// CustomProviderExtension is the file extension of Lua scheme scripts.
const CustomProviderExtension = ".lua"

// Provider represents a scheme provider.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool // Reserved for Lua-based providers.
	CreateScheme func() (scheme.Scheme, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns providers for the native schemes.
func Builtins() []*Provider {
	return lo.Map(scheme.Builtins(), func(s scheme.Scheme, _ int) *Provider {
		return &Provider{
			ID:   s.ID(),
			Name: s.Name(),
			CreateScheme: func() (scheme.Scheme, error) {
				return s, nil
			},
		}
	})
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// List returns every known provider, built-ins first.
func List() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by its ID or display name, case-insensitively.
func Get(name string) (*Provider, bool) {
	for _, p := range List() {
		if strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders scans the schemes directory for Lua scripts.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Schemes())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Schemes(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateScheme: func() (scheme.Scheme, error) {
				return custom.LoadScheme(path)
			},
		})
	}

	return providers, nil
}
