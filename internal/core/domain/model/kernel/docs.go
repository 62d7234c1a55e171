// Package kernel holds the primitives shared by every aggregate of the
// manufacturing model: the UUID identifier and date validation helpers.
package kernel
