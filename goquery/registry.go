package goquery

import (
	"github.com/PuerkitoBio/goquery"
)

// Site is a publisher-specific content extractor for layouts the generic
// cleaner cannot handle. A Site may still hand its own fragment to the
// cleaner as a last resort.
type Site interface {
	// Name returns the site's identifier (e.g., "paulgraham").
	Name() string

	// Matches reports whether the page at url should use this site.
	Matches(url string) bool

	// ExtractContent returns the article body markup for doc.
	ExtractContent(doc *goquery.Document, cleaner *Cleaner) string
}

// Registry holds site overrides in registration order. The first site
// whose Matches returns true wins; pages no site claims use the generic
// content containers.
type Registry struct {
	sites []Site
}

// NewRegistry creates a Registry with the given sites.
func NewRegistry(sites ...Site) *Registry {
	r := &Registry{}
	for _, s := range sites {
		r.Register(s)
	}
	return r
}

// DefaultRegistry returns a Registry with every built-in site override.
func DefaultRegistry() *Registry {
	return NewRegistry(NewPaulGrahamSite())
}

// Register adds a site. A site with the same name is replaced in place.
func (r *Registry) Register(site Site) {
	for i, s := range r.sites {
		if s.Name() == site.Name() {
			r.sites[i] = site
			return
		}
	}
	r.sites = append(r.sites, site)
}

// Match returns the first site claiming url, or nil.
func (r *Registry) Match(url string) Site {
	for _, s := range r.sites {
		if s.Matches(url) {
			return s
		}
	}
	return nil
}

// List returns the names of all registered sites in match order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sites))
	for _, s := range r.sites {
		names = append(names, s.Name())
	}
	return names
}
