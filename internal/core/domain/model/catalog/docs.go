// Package catalog holds the reference data production planning relies on:
// vehicle models, process types (the ordered stages of a line) and the
// equipment assigned to each process type.
package catalog
