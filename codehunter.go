// Package codehunter provides the core of a website source extractor:
// a bounded, deduplicated history of past extractions persisted to durable
// key-value storage, and a regex-driven syntax painter for the extracted
// HTML, CSS and JavaScript files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, regexp2/, zip/).
package codehunter
