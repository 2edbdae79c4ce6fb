// Package source provides leaf generators for noise trees.
//
// The kernels come from third-party packages; this package only adapts them to
// noise.NoiseFn and to the noise.Seedable and noise.MultiFractal capabilities.
// All generators are immutable values: setters return a reconfigured copy, and
// a value may be shared between goroutines.
//
// The zero value of each generator is a valid SetSeed receiver, so
// noise.NewSeeded works for all of them.
package source
