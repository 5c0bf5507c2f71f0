// Package regions loads region definition files. A region file is HCL
// containing one or more `region "<name>" { ... }` blocks whose attributes
// are named sub-population counts; all counts across all blocks are summed
// into a single params.Regions aggregate.
package regions
