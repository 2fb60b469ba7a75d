package config

import (
	_ "embed"
	"errors"
	"fmt"

	"settleedge_web/services/shell"

	"github.com/BurntSushi/toml"
)

//go:embed navigation.toml
var navigationTOML string

// Navigation holds the static link lists rendered by the site chrome.
type Navigation struct {
	Desktop []shell.NavLink
	Mobile  []shell.NavLink
	CTA     shell.NavLink
	Footer  []FooterColumn
}

// FooterColumn is one titled group of footer links.
type FooterColumn struct {
	Title string
	Links []shell.NavLink
}

type navLinkDoc struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

type navigationDoc struct {
	CTA     navLinkDoc   `toml:"cta"`
	Desktop []navLinkDoc `toml:"desktop"`
	Mobile  []navLinkDoc `toml:"mobile"`
	Footer  []struct {
		Title string       `toml:"title"`
		Links []navLinkDoc `toml:"links"`
	} `toml:"footer"`
}

// LoadNavigation parses the embedded navigation document.
func LoadNavigation() (*Navigation, error) {
	return ParseNavigation(navigationTOML)
}

// ParseNavigation decodes a navigation document. Every path must be a known
// route and no list may contain the same route twice.
func ParseNavigation(data string) (*Navigation, error) {
	var doc navigationDoc
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode navigation: %w", err)
	}

	desktop, err := convertLinks("desktop", doc.Desktop, true)
	if err != nil {
		return nil, err
	}
	mobile, err := convertLinks("mobile", doc.Mobile, true)
	if err != nil {
		return nil, err
	}
	if len(desktop) == 0 || len(mobile) == 0 {
		return nil, errors.New("navigation must define desktop and mobile links")
	}

	cta, err := convertLink("cta", doc.CTA)
	if err != nil {
		return nil, err
	}

	nav := &Navigation{Desktop: desktop, Mobile: mobile, CTA: cta}
	for _, col := range doc.Footer {
		// Footer columns may point several labels at the same page.
		links, err := convertLinks("footer "+col.Title, col.Links, false)
		if err != nil {
			return nil, err
		}
		nav.Footer = append(nav.Footer, FooterColumn{Title: col.Title, Links: links})
	}
	return nav, nil
}

func convertLinks(list string, docs []navLinkDoc, unique bool) ([]shell.NavLink, error) {
	links := make([]shell.NavLink, 0, len(docs))
	seen := make(map[shell.Route]bool)
	for _, d := range docs {
		link, err := convertLink(list, d)
		if err != nil {
			return nil, err
		}
		if unique && seen[link.Route] {
			return nil, fmt.Errorf("%s: route %s listed twice", list, link.Route)
		}
		seen[link.Route] = true
		links = append(links, link)
	}
	return links, nil
}

func convertLink(list string, d navLinkDoc) (shell.NavLink, error) {
	if d.Label == "" {
		return shell.NavLink{}, fmt.Errorf("%s: link to %q has no label", list, d.Path)
	}
	r, ok := shell.ParseRoute(d.Path)
	if !ok {
		return shell.NavLink{}, fmt.Errorf("%s: %q: %w", list, d.Path, shell.ErrUnknownRoute)
	}
	return shell.NavLink{Label: d.Label, Route: r}, nil
}
