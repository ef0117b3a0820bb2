// Package catalog holds the static product data: consultation sessions,
// plans, payment details and the radio embed.
package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Session struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Duration    int      `yaml:"duration" json:"duration"`
	Price       int      `yaml:"price" json:"price"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

type Plan struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Price       int      `yaml:"price" json:"price"`
	Period      string   `yaml:"period" json:"period"`
	Description string   `yaml:"description" json:"description"`
	Popular     bool     `yaml:"popular" json:"popular"`
	Features    []string `yaml:"features" json:"features"`
	Limitations []string `yaml:"limitations" json:"limitations,omitempty"`
}

type Payment struct {
	UPIID     string `yaml:"upi_id" json:"upiId"`
	PayeeName string `yaml:"payee_name" json:"payeeName"`
	Currency  string `yaml:"currency" json:"currency"`
	PayPalURL string `yaml:"paypal_url" json:"paypalUrl"`
}

// UPILink builds a upi://pay deep link. A non-positive amount leaves the
// amount for the payer to fill in.
func (p Payment) UPILink(amount int) string {
	q := url.Values{}
	q.Set("pa", p.UPIID)
	q.Set("pn", p.PayeeName)
	q.Set("cu", p.Currency)
	if amount > 0 {
		q.Set("am", strconv.Itoa(amount))
	}
	return "upi://pay?" + q.Encode()
}

type Radio struct {
	Name        string `yaml:"name" json:"name"`
	PlayerURL   string `yaml:"player_url" json:"playerUrl"`
	ProviderURL string `yaml:"provider_url" json:"providerUrl"`
}

type Catalog struct {
	Sessions []Session `yaml:"sessions"`
	Plans    []Plan    `yaml:"plans"`
	Payment  Payment   `yaml:"payment"`
	Radio    Radio     `yaml:"radio"`
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the embedded catalog. It panics if the embedded document is
// broken, which the tests guard against.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Sessions))
	for _, s := range c.Sessions {
		if s.Slug == "" {
			return fmt.Errorf("catalog: session %q has no slug", s.Title)
		}
		if seen[s.Slug] {
			return fmt.Errorf("catalog: duplicate session %q", s.Slug)
		}
		if s.Duration <= 0 || s.Price < 0 {
			return fmt.Errorf("catalog: session %q needs a positive duration and non-negative price", s.Slug)
		}
		seen[s.Slug] = true
	}
	return nil
}

func (c *Catalog) Session(slug string) (Session, bool) {
	for _, s := range c.Sessions {
		if s.Slug == slug {
			return s, true
		}
	}
	return Session{}, false
}

func (c *Catalog) Plan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
