// Package file implements the route and delivery stores as plain text
// files.
//
// Route file:
//
//	<N>
//	<name 1>
//	...
//	<name N>
//	<d11> <d12> ... <d1N>
//	...
//	<dN1> ... <dNN>
//
// Delivery file:
//
//	<M>
//	<src> <dst> <vehicle> <weight> <distance> <base> <fuel> <fuelCost> <opCost> <profit> <charge> <hours>
//
// Indices and the vehicle class are 0-based integers. Every other
// number is written with two decimals. A save overwrites the whole file.
// A load of a missing file yields an empty collection; a file that
// cannot be parsed yields an empty collection and domain.ErrCorruptStore.
package file
