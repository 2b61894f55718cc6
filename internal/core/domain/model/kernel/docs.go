// Package kernel contains shared value objects used across domain aggregates.
// It provides UUID identifiers and the ZipCode value object that anchors
// shipment destinations, partner service areas, and event locations.
package kernel
