// Package order implements the Order aggregate of the manufacturing model:
// a requested quantity of one vehicle model, split across productions by
// allocations.
//
// Business rules:
//   - quantity > 0, dueDate >= orderDate
//   - the sum of allocated quantities never exceeds quantity
//   - Created, PartiallyAllocated and FullyAllocated follow the allocated sum
//   - Cancelled and Completed are sticky; only FullyAllocated orders complete
package order
