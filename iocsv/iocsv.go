// Package iocsv implements the external CSV interfaces a run reads
// and writes: mesh point/element files, boundary flux/value files, and
// Scalar/Variable output, via the stdlib encoding/csv package (no
// third-party CSV library covers this need).
package iocsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/mesh"
)

// LoadMeshPoints reads a "gid,position_x" CSV into parallel slices
// suitable for mesh.New.
func LoadMeshPoints(path string) (gid []int, x []float64, err error) {
	rows, err := readCSV(path, 2)
	if err != nil {
		return nil, nil, err
	}
	gid = make([]int, len(rows))
	x = make([]float64, len(rows))
	for i, row := range rows {
		g, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, nil, ferr.New(ferr.MalformedInput, "%s: row %d: gid %q is not an integer", path, i+2, row[0])
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, ferr.New(ferr.MalformedInput, "%s: row %d: position_x %q is not a number", path, i+2, row[1])
		}
		gid[i], x[i] = g, v
	}
	return gid, x, nil
}

// LoadMeshElements reads a "gid,p0_gid,p1_gid" CSV into parallel
// slices suitable for mesh.New.
func LoadMeshElements(path string) (gid, p0, p1 []int, err error) {
	rows, err := readCSV(path, 3)
	if err != nil {
		return nil, nil, nil, err
	}
	gid = make([]int, len(rows))
	p0 = make([]int, len(rows))
	p1 = make([]int, len(rows))
	for i, row := range rows {
		vals, err := parseInts(row)
		if err != nil {
			return nil, nil, nil, ferr.New(ferr.MalformedInput, "%s: row %d: %v", path, i+2, err)
		}
		gid[i], p0[i], p1[i] = vals[0], vals[1], vals[2]
	}
	return gid, p0, p1, nil
}

// LoadBoundaryElements reads an "element_gid,pa_lid,boundaryconfig_id"
// CSV, the schema shared by both the flux and the value boundary
// files, into the three parallel slices boundary.New expects.
func LoadBoundaryElements(path string) (elemGid, localIdx, configID []int, err error) {
	rows, err := readCSV(path, 3)
	if err != nil {
		return nil, nil, nil, err
	}
	elemGid = make([]int, len(rows))
	localIdx = make([]int, len(rows))
	configID = make([]int, len(rows))
	for i, row := range rows {
		vals, err := parseInts(row)
		if err != nil {
			return nil, nil, nil, ferr.New(ferr.MalformedInput, "%s: row %d: %v", path, i+2, err)
		}
		elemGid[i], localIdx[i], configID[i] = vals[0], vals[1], vals[2]
	}
	return elemGid, localIdx, configID, nil
}

// WriteScalarCSV writes a "gid,position_x,value" CSV, one row per
// point of m in did order.
func WriteScalarCSV(path string, m *mesh.Mesh, s *field.Scalar) error {
	return writeValueCSV(path, m, s.At)
}

// WriteVariableCSV writes a "gid,position_x,value" CSV for a
// Variable, one row per point of m in did order.
func WriteVariableCSV(path string, m *mesh.Mesh, v *field.Variable) error {
	return writeValueCSV(path, m, v.At)
}

// WriteVariableTimestepCSV substitutes the first "*" in pathPattern
// with step and writes the Variable's current values, for transient
// output per timestep.
func WriteVariableTimestepCSV(pathPattern string, step int, m *mesh.Mesh, v *field.Variable) error {
	path := strings.Replace(pathPattern, "*", strconv.Itoa(step), 1)
	return WriteVariableCSV(path, m, v)
}

func writeValueCSV(path string, m *mesh.Mesh, at func(did int) float64) error {
	f, err := os.Create(path)
	if err != nil {
		return ferr.New(ferr.MalformedInput, "cannot create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"gid", "position_x", "value"}); err != nil {
		return ferr.New(ferr.MalformedInput, "cannot write header to %s: %v", path, err)
	}
	for _, pt := range m.Points {
		record := []string{
			strconv.Itoa(pt.Gid),
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(at(pt.Did), 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return ferr.New(ferr.MalformedInput, "cannot write row to %s: %v", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ferr.New(ferr.MalformedInput, "error flushing %s: %v", path, err)
	}
	return nil
}

// readCSV opens path, skips the header row, and returns every
// remaining row with exactly wantCols fields.
func readCSV(path string, wantCols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ferr.New(ferr.MalformedInput, "cannot open %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, ferr.New(ferr.MalformedInput, "%s: missing header row", path)
		}
		return nil, ferr.New(ferr.MalformedInput, "%s: cannot read header: %v", path, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ferr.New(ferr.MalformedInput, "%s: %v", path, err)
		}
		if len(row) != wantCols {
			return nil, ferr.New(ferr.MalformedInput, "%s: expected %d columns, got %d", path, wantCols, len(row))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseInts(row []string) ([]int, error) {
	out := make([]int, len(row))
	for i, cell := range row {
		v, err := strconv.Atoi(cell)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
