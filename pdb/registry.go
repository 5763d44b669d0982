package pdb

import "github.com/guth0/HalfScramble/encode"

// Canonical registers the three fixed pattern databases by file path,
// alongside the projection each one encodes against.
// cmd/buildpdb looks an entry up by its pdb_num argument (1, 2, 3) through
// ByNum; cmd/solve opens all three through OpenCanonical.
var Canonical = []struct {
	Num  int
	Path string
	Proj encode.Projection
}{
	{1, "data/corner_pdb.bin", encode.CornerProjection},
	{2, "data/edge_pdb_1.bin", encode.Edge1Projection},
	{3, "data/edge_pdb_2.bin", encode.Edge2Projection},
}

// ByNum returns the canonical entry for pdb_num, and false if pdb_num is
// not in {1, 2, 3}.
func ByNum(num int) (path string, proj encode.Projection, ok bool) {
	for _, c := range Canonical {
		if c.Num == num {
			return c.Path, c.Proj, true
		}
	}
	return "", encode.Projection{}, false
}

// OpenCanonical opens all three canonical PDBs from their fixed paths,
// returning a ready-to-use Set. It is the solver CLI's entry point into
// this package.
func OpenCanonical() (Set, error) {
	set := make(Set, 0, len(Canonical))
	for _, c := range Canonical {
		t, err := Open(c.Path, c.Proj)
		if err != nil {
			return nil, err
		}
		set = append(set, t)
	}
	return set, nil
}
