package schema

import (
	"net/url"
	"strings"
)

// Address is a postal address.
type Address struct {
	StreetAddress   string `yaml:"streetAddress" json:"streetAddress"`
	AddressLocality string `yaml:"addressLocality" json:"addressLocality"`
	AddressCountry  string `yaml:"addressCountry" json:"addressCountry"`
}

// Site is a related web property.
type Site struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Business holds the facts every generator draws on.
type Business struct {
	Name       string   `yaml:"name"`
	URL        string   `yaml:"url"`
	Logo       string   `yaml:"logo"`
	Telephone  string   `yaml:"telephone"`
	Email      string   `yaml:"email"`
	Address    Address  `yaml:"address"`
	SameAs     []string `yaml:"sameAs"`
	PriceRange string   `yaml:"priceRange"`

	// SisterSites are partner properties for cross-promotion.
	SisterSites []Site `yaml:"sisterSites"`
}

// DefaultBusiness returns the facts for Cinematic Web Works.
func DefaultBusiness() Business {
	return Business{
		Name:      "Cinematic Web Works",
		URL:       "https://cinematicwebworks.com",
		Logo:      "https://cinematicwebworks.com/logo.png",
		Telephone: "+97339007750",
		Email:     "ceo@bahrainnights.com",
		Address: Address{
			StreetAddress:   "Manama",
			AddressLocality: "Manama",
			AddressCountry:  "BH",
		},
		SameAs:     []string{"https://wa.me/97339007750"},
		PriceRange: "$$",
		SisterSites: []Site{
			{Name: "BahrainNights", URL: "https://bahrainnights.com"},
			{Name: "Film Production Bahrain", URL: "https://filmproductionbahrain.com"},
			{Name: "Events Bahrain", URL: "https://eventsbahrain.com"},
		},
	}
}

// Merge returns b with every non-empty field of other applied on top.
func (b Business) Merge(other Business) Business {
	out := b
	setIf(&out.Name, other.Name)
	setIf(&out.URL, other.URL)
	setIf(&out.Logo, other.Logo)
	setIf(&out.Telephone, other.Telephone)
	setIf(&out.Email, other.Email)
	setIf(&out.Address.StreetAddress, other.Address.StreetAddress)
	setIf(&out.Address.AddressLocality, other.Address.AddressLocality)
	setIf(&out.Address.AddressCountry, other.Address.AddressCountry)
	setIf(&out.PriceRange, other.PriceRange)
	if len(other.SameAs) > 0 {
		out.SameAs = append([]string(nil), other.SameAs...)
	}
	if len(other.SisterSites) > 0 {
		out.SisterSites = append([]Site(nil), other.SisterSites...)
	}
	return out
}

// SisterDomains returns the host names of the sister sites.
func (b Business) SisterDomains() []string {
	out := make([]string, 0, len(b.SisterSites))
	for _, s := range b.SisterSites {
		u, err := url.Parse(s.URL)
		if err != nil || u.Hostname() == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(u.Hostname(), "www."))
	}
	return out
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
