package encode

// CornerProjection covers the entire corner group (8 corners, base-3
// orientation): 8! * 3^7 = 88,179,840 entries, matching the canonical
// corner_pdb.bin size.
var CornerProjection = Projection{
	Name:  "corner",
	Group: GroupCorner,
	Lo:    0,
	Hi:    8,
	Base:  3,
}

// Edge1Projection and Edge2Projection split the 12-edge group into two
// overlapping 8-edge windows (base-2 orientation): 8! * 2^7 = 5,160,960
// entries each, matching the canonical edge_pdb_1.bin / edge_pdb_2.bin
// sizes. The overlap (edges 4-7 fall in both windows)
// means neither database alone is exhaustive over all 12 edges; each is
// admissible on its own, and pdb.Set's max rule combines them into one
// heuristic that covers the whole edge group.
var Edge1Projection = Projection{
	Name:  "edge1",
	Group: GroupEdge,
	Lo:    0,
	Hi:    8,
	Base:  2,
}

var Edge2Projection = Projection{
	Name:  "edge2",
	Group: GroupEdge,
	Lo:    4,
	Hi:    12,
	Base:  2,
}
