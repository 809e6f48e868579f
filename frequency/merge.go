package frequency

// Merge extracts the shared portion of a and b. When the tolerant
// intersection survives filtering, the overlap pieces carry the summed
// count and residual holds the non-shared remainders of both inputs;
// otherwise overlap is empty and residual returns a and b unchanged.
//
// The intersection is computed against b dilated by the buffer
// tolerance, and each residual is computed against the other side's
// dilation, so small digitization offsets between shapes that nominally
// follow the same street do not break the partition.
func (r *Reconciler) Merge(a, b Segment) (overlap, residual []Segment, err error) {
	corridor := b.Line.Buffer(r.BufferTol)

	pieces, err := a.Line.Intersection(corridor).Pieces()
	if err != nil {
		return nil, nil, err
	}
	kept := filterLong(pieces, r.MinLength)
	if len(kept) > 0 {
		merged, err := r.Geo.MergeLines(kept)
		if err != nil {
			return nil, nil, err
		}
		kept = filterLong(merged, r.MinLength)
	}
	if len(kept) == 0 {
		return nil, []Segment{a, b}, nil
	}

	total := a.Count + b.Count
	overlap = make([]Segment, 0, len(kept))
	for _, p := range kept {
		overlap = append(overlap, Segment{Line: p, Count: total})
	}

	aResidual, err := r.subtract(a, corridor)
	if err != nil {
		return nil, nil, err
	}
	bResidual, err := r.subtract(b, a.Line.Buffer(r.BufferTol))
	if err != nil {
		return nil, nil, err
	}
	residual = append(aResidual, bResidual...)
	return overlap, residual, nil
}
