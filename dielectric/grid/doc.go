// Package grid validates equispaced energy axes.
//
// Every stage of the PHS correction indexes the energy axis by integer offsets,
// so the axis must be uniformly sampled. [Validate] checks the spacing against a
// tolerance and returns a [Grid] describing the axis; [Grid.ShiftIndex] turns an
// energy shift into the equivalent index shift.
//
// # Usage
//
//	g, err := grid.Validate(energy, 1e-3)
//	if err != nil {
//		return err // errors.Is(err, grid.ErrNonUniformGrid)
//	}
//	di := g.ShiftIndex(delta)
package grid
