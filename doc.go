// Package pricetracker provides the data-management core for tracking
// commodity prices across Gambian markets over time. It is designed to be
// local-first and auditable: every price sighting lives as one row of a plain
// CSV file the user can read, back up, and version.
//
// The core functionalities include:
//   - Record Validation: Checking raw entries for well-formedness and
//     plausibility before anything reaches disk, with typed errors per field.
//   - Durable Persistence: Crash-safe appends (flush and fsync), atomic full
//     rewrites (temp file and rename), and rotated timestamped backups.
//   - Queries and Statistics: Filtering, per-location summaries, trend
//     series, rolling averages, and a dashboard overview, all as pure
//     functions over an in-memory observation set.
//   - Price-Change Alerts: Detection of significant movements between
//     time-adjacent observations of the same item and location.
//   - Import and Export: CSV, JSON and XLSX serializations of any
//     (possibly filtered) observation set, with lossless CSV round-trips.
//
// This package serves as the foundational logic for the `gptrack`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package pricetracker
