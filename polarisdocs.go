// Package polarisdocs retrieves and normalizes documentation for the
// Polaris design system. It resolves component identifiers against a
// registry built from the documentation repository, fetches static MDX
// content, and scrapes client-rendered property tables with a headless
// browser, caching each class of result with its own TTL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., github/, rod/, goquery/).
package polarisdocs
