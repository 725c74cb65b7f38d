package rod

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/polarisdocs"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Default timeouts for the scrape state machine. Navigation gets the
// longest bound; accordion expansion the shortest, since a section that
// never expands is tolerated.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultTableTimeout      = 10 * time.Second
	DefaultAccordionTimeout  = 3 * time.Second
)

// Selectors for the develop view. Versioned schema of the documentation
// site's markup: the primary property table sits directly in the main
// content region, auxiliary sections are disclosure elements beneath it.
const (
	mainTableSelector = "main table"
	accordionSelector = "main details"
	toggleSelector    = "summary"
	innerTableSel     = "table"
)

// primarySectionTitle names the section built from the primary table.
const primarySectionTitle = "Properties"

// fallbackSectionTitle names accordion sections whose heading is empty.
const fallbackSectionTitle = "Other"

// Ensure Scraper implements polarisdocs.DevelopService at compile time.
var _ polarisdocs.DevelopService = (*Scraper)(nil)

// Scraper drives a browser session over a component's develop view and
// harvests its property tables. Row parsing is delegated to a
// TableExtractor so the cell-level selector strategy can evolve
// independently.
type Scraper struct {
	manager   *Manager
	extractor polarisdocs.TableExtractor
	baseURL   string

	navTimeout       time.Duration
	tableTimeout     time.Duration
	accordionTimeout time.Duration
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithNavigationTimeout bounds page navigation and load.
func WithNavigationTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.navTimeout = d
	}
}

// WithTableTimeout bounds the wait for the primary table to render.
func WithTableTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.tableTimeout = d
	}
}

// WithAccordionTimeout bounds the wait for an expanded accordion's table.
func WithAccordionTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.accordionTimeout = d
	}
}

// NewScraper creates a Scraper for component pages under baseURL, e.g.
// https://polaris.shopify.com/components.
func NewScraper(manager *Manager, extractor polarisdocs.TableExtractor, baseURL string, opts ...Option) *Scraper {
	s := &Scraper{
		manager:          manager,
		extractor:        extractor,
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		navTimeout:       DefaultNavigationTimeout,
		tableTimeout:     DefaultTableTimeout,
		accordionTimeout: DefaultAccordionTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Develop navigates the component's develop view and extracts its property
// sections. Each call uses a fresh isolated browsing context, torn down on
// every exit path, so one call's failure cannot corrupt another's session
// state.
func (s *Scraper) Develop(ctx context.Context, loc polarisdocs.Location) (*polarisdocs.DevelopData, error) {
	browser, err := s.manager.Browser()
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EBROWSER, "starting browser: %v", err)
	}

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "creating browsing context: %v", err)
	}
	defer func() {
		_ = proto.TargetDisposeBrowserContext{
			BrowserContextID: incognito.BrowserContextID,
		}.Call(browser)
	}()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "creating page: %v", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, loc.Category, loc.Slug)
	nav := page.Timeout(s.navTimeout)
	if err := nav.Navigate(url); err != nil {
		return nil, navError(err, url)
	}
	if err := nav.WaitLoad(); err != nil {
		return nil, navError(err, url)
	}

	sections, err := s.extractSections(page, loc)
	if err != nil {
		return nil, err
	}
	return &polarisdocs.DevelopData{Sections: sections}, nil
}

// extractSections reads the primary table and every accordion section in
// encounter order.
func (s *Scraper) extractSections(page *rod.Page, loc polarisdocs.Location) ([]polarisdocs.PropertiesSection, error) {
	var sections []polarisdocs.PropertiesSection

	primary, err := page.Timeout(s.tableTimeout).Element(mainTableSelector)
	if err != nil {
		if isTimeout(err) {
			return nil, polarisdocs.Errorf(polarisdocs.ETIMEOUT, "property table for %q did not render in time", loc.Slug)
		}
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "locating property table for %q: %v", loc.Slug, err)
	}
	rows, err := s.tableRows(primary)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		sections = append(sections, polarisdocs.PropertiesSection{
			Title:      primarySectionTitle,
			Properties: rows,
		})
	}

	items, err := page.Elements(accordionSelector)
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "locating accordion sections for %q: %v", loc.Slug, err)
	}
	for _, item := range items {
		section, ok := s.extractAccordion(item)
		if ok {
			sections = append(sections, section)
		}
	}

	return sections, nil
}

// extractAccordion expands a collapsed section and reads its table. A
// section that never expands, or whose table never appears, yields no
// section rather than an error; later sections are unaffected.
func (s *Scraper) extractAccordion(item *rod.Element) (polarisdocs.PropertiesSection, bool) {
	title := fallbackSectionTitle
	toggle, err := item.Element(toggleSelector)
	if err == nil {
		if text, err := toggle.Text(); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				title = text
			}
		}
	}

	if !s.isExpanded(item) && toggle != nil {
		if err := toggle.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return polarisdocs.PropertiesSection{}, false
		}
	}

	table, err := item.Timeout(s.accordionTimeout).Element(innerTableSel)
	if err != nil {
		// Tolerated: the accordion never produced a table.
		return polarisdocs.PropertiesSection{}, false
	}
	rows, err := s.tableRows(table)
	if err != nil || len(rows) == 0 {
		return polarisdocs.PropertiesSection{}, false
	}

	return polarisdocs.PropertiesSection{Title: title, Properties: rows}, true
}

// isExpanded reports whether a disclosure element is already open.
func (s *Scraper) isExpanded(item *rod.Element) bool {
	open, err := item.Property("open")
	return err == nil && open.Bool()
}

// tableRows hands a table's rendered HTML to the extractor.
func (s *Scraper) tableRows(table *rod.Element) ([]polarisdocs.PropertyInfo, error) {
	html, err := table.HTML()
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "reading table markup: %v", err)
	}
	return s.extractor.ExtractRows(html)
}

// Close releases the shared browser process.
func (s *Scraper) Close() error {
	return s.manager.Close()
}

// navError maps a navigation failure to the error taxonomy: a deadline is a
// distinct render-timeout failure, anything else is a hard fetch error.
func navError(err error, url string) error {
	if isTimeout(err) {
		return polarisdocs.Errorf(polarisdocs.ETIMEOUT, "page %s did not render in time", url)
	}
	return polarisdocs.Errorf(polarisdocs.EINTERNAL, "navigating to %s: %v", url, err)
}

// isTimeout reports whether err stems from an elapsed rod timeout.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
