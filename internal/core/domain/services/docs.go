// Package services holds domain services spanning more than one aggregate.
//
//   - Allocator: attaches and detaches an Allocation on an Order and a
//     Production as a single step
package services
