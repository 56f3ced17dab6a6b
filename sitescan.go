// Package sitescan provides a bounded-crawl website inspector. Starting from
// a single URL it visits a handful of pages and summarizes each one: title,
// description, headings, navigation links, clickable elements with locator
// hints, forms, and inferred product features.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/).
package sitescan
