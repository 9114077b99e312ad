package iocsv

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cpmech/gofem1d/boundary"
	"github.com/cpmech/gofem1d/equation"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/integral"
	"github.com/cpmech/gofem1d/mesh"
	"github.com/cpmech/gofem1d/physics"
)

func writeFile(tst *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		tst.Fatalf("unexpected error writing %s: %v", path, err)
	}
	return path
}

func TestLoadMeshPointsAndElements(tst *testing.T) {
	dir := tst.TempDir()
	pointsPath := writeFile(tst, dir, "points.csv", "gid,position_x\n0,0\n1,0.5\n2,1\n")
	elemsPath := writeFile(tst, dir, "elems.csv", "gid,p0_gid,p1_gid\n0,0,1\n1,1,2\n")

	gid, x, err := LoadMeshPoints(pointsPath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(gid) != 3 || x[1] != 0.5 {
		tst.Fatalf("unexpected points: %v %v", gid, x)
	}

	egid, p0, p1, err := LoadMeshElements(elemsPath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(egid) != 2 || p0[1] != 1 || p1[1] != 2 {
		tst.Fatalf("unexpected elements: %v %v %v", egid, p0, p1)
	}

	m, err := mesh.New(gid, x, egid, p0, p1)
	if err != nil {
		tst.Fatalf("unexpected mesh error: %v", err)
	}
	if m.NumPoints() != 3 || m.NumElems() != 2 {
		tst.Fatalf("unexpected mesh size: %d points, %d elems", m.NumPoints(), m.NumElems())
	}
}

func TestLoadMeshPointsRejectsNonIntegerGid(tst *testing.T) {
	dir := tst.TempDir()
	path := writeFile(tst, dir, "bad.csv", "gid,position_x\nfoo,0\n")
	if _, _, err := LoadMeshPoints(path); err == nil {
		tst.Fatal("expected an error for a non-integer gid")
	}
}

func TestLoadBoundaryElements(tst *testing.T) {
	dir := tst.TempDir()
	path := writeFile(tst, dir, "bnd.csv", "element_gid,pa_lid,boundaryconfig_id\n0,0,0\n9,1,1\n")
	elemGid, localIdx, configID, err := LoadBoundaryElements(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(elemGid) != 2 || elemGid[1] != 9 || localIdx[1] != 1 || configID[1] != 1 {
		tst.Fatalf("unexpected rows: %v %v %v", elemGid, localIdx, configID)
	}

	bnd, err := boundary.New(nil, nil, nil, elemGid, localIdx, configID)
	if err != nil {
		tst.Fatalf("unexpected boundary error: %v", err)
	}
	if err := bnd.SetCondition(0, boundary.Dirichlet, []float64{50}); err != nil {
		tst.Fatal(err)
	}
	if err := bnd.SetCondition(1, boundary.Dirichlet, []float64{10}); err != nil {
		tst.Fatal(err)
	}
}

func TestWriteScalarAndVariableCSVRoundTrip(tst *testing.T) {
	dir := tst.TempDir()
	m, err := mesh.New([]int{0, 1, 2}, []float64{0, 0.5, 1}, []int{0, 1}, []int{0, 1}, []int{1, 2})
	if err != nil {
		tst.Fatalf("unexpected mesh error: %v", err)
	}
	s := field.NewScalar(m, 7)
	s.Set(1, 9.5)

	path := filepath.Join(dir, "scalar.csv")
	if err := WriteScalarCSV(path, m, s); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("unexpected error reading back: %v", err)
	}
	want := "gid,position_x,value\n0,0,7\n1,0.5,9.5\n2,1,7\n"
	if string(contents) != want {
		tst.Fatalf("unexpected csv contents:\n%s\nwant:\n%s", contents, want)
	}

	v := field.NewVariable(m, 0)
	v.Set(0, 50)
	if err := WriteVariableTimestepCSV(filepath.Join(dir, "out-*.csv"), 3, m, v); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out-3.csv")); err != nil {
		tst.Fatalf("expected timestep-substituted file to exist: %v", err)
	}
}

// readValueColumn re-reads a "gid,position_x,value" CSV written by
// WriteVariableCSV, returning the value column keyed by did (row
// order), as an independent check that what landed on disk is what
// was actually solved.
func readValueColumn(tst *testing.T, path string) []float64 {
	f, err := os.Open(path)
	if err != nil {
		tst.Fatalf("unexpected error reading %s: %v", path, err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		tst.Fatalf("unexpected error parsing %s: %v", path, err)
	}
	out := make([]float64, 0, len(rows)-1)
	for _, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			tst.Fatalf("unexpected non-numeric value %q in %s: %v", row[2], path, err)
		}
		out = append(out, v)
	}
	return out
}

// the E1 scenario driven entirely through the CSV surface: load a
// mesh and boundary from CSV, solve steady diffusion, write the
// result, and confirm the written rows match the in-memory solve.
func TestCSVRoundTripSolvesE1Scenario(tst *testing.T) {
	dir := tst.TempDir()

	n := 10
	pointsCSV, elemsCSV := "gid,position_x\n", "gid,p0_gid,p1_gid\n"
	for i := 0; i <= n; i++ {
		pointsCSV += strconv.Itoa(i) + "," + strconv.FormatFloat(float64(i)/float64(n), 'g', -1, 64) + "\n"
	}
	for i := 0; i < n; i++ {
		elemsCSV += strconv.Itoa(i) + "," + strconv.Itoa(i) + "," + strconv.Itoa(i+1) + "\n"
	}
	pointsPath := writeFile(tst, dir, "points.csv", pointsCSV)
	elemsPath := writeFile(tst, dir, "elems.csv", elemsCSV)
	valuePath := writeFile(tst, dir, "value_bnd.csv", "element_gid,pa_lid,boundaryconfig_id\n0,0,0\n")
	fluxPath := writeFile(tst, dir, "flux_bnd.csv", "element_gid,pa_lid,boundaryconfig_id\n9,1,1\n")

	pointGid, pointX, err := LoadMeshPoints(pointsPath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	elemGid, elemP0, elemP1, err := LoadMeshElements(elemsPath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	m, err := mesh.New(pointGid, pointX, elemGid, elemP0, elemP1)
	if err != nil {
		tst.Fatalf("unexpected mesh error: %v", err)
	}

	valueElemGid, valueLocalIdx, valueConfigID, err := LoadBoundaryElements(valuePath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	fluxElemGid, fluxLocalIdx, fluxConfigID, err := LoadBoundaryElements(fluxPath)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	bnd, err := boundary.New(fluxElemGid, fluxLocalIdx, fluxConfigID, valueElemGid, valueLocalIdx, valueConfigID)
	if err != nil {
		tst.Fatalf("unexpected boundary error: %v", err)
	}
	if err := bnd.SetCondition(0, boundary.Dirichlet, []float64{50}); err != nil {
		tst.Fatal(err)
	}
	if err := bnd.SetCondition(1, boundary.Neumann, []float64{2}); err != nil {
		tst.Fatal(err)
	}

	store := integral.New(m)
	dom, err := physics.NewDomain(m, bnd, store)
	if err != nil {
		tst.Fatalf("unexpected domain error: %v", err)
	}

	value := field.NewVariable(m, 0)
	valueField := field.NewVariableField([]*field.Variable{value})
	diff := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	gen := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 100)})

	phys, err := physics.NewSteadyDiffusion([]physics.Domain{dom}, valueField, diff, gen)
	if err != nil {
		tst.Fatalf("unexpected physics error: %v", err)
	}
	eq, err := equation.NewSteady([]physics.Steady{phys}, "dense")
	if err != nil {
		tst.Fatalf("unexpected equation error: %v", err)
	}
	if err := eq.IterateSolution(); err != nil {
		tst.Fatalf("unexpected solve error: %v", err)
	}
	eq.StoreSolution()

	outPath := filepath.Join(dir, "u.csv")
	if err := WriteVariableCSV(outPath, m, value); err != nil {
		tst.Fatalf("unexpected error writing output: %v", err)
	}

	written := readValueColumn(tst, outPath)
	if len(written) != m.NumPoints() {
		tst.Fatalf("expected %d written rows, got %d", m.NumPoints(), len(written))
	}
	for did := 0; did < m.NumPoints(); did++ {
		if math.Abs(written[did]-value.At(did)) > 1e-12 {
			tst.Fatalf("written row %d (%g) does not match the in-memory solve (%g)", did, written[did], value.At(did))
		}
	}
	if math.Abs(value.At(0)-50) > 1e-9 {
		tst.Fatalf("expected left dirichlet value 50, got %g", value.At(0))
	}
	mid := m.NumPoints() / 2
	if math.Abs(value.At(mid)-88.5) > 1e-3 {
		tst.Fatalf("expected midpoint value ~88.5 per the closed-form solution, got %g", value.At(mid))
	}
}
