// Command export writes the scenario definitions to JSON, for rendering
// with other implementations of the chaos game.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chaos"
	"seehuhn.de/go/chaos/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	dir := filepath.Join("testdata", "scenarios")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			splineFile := filepath.Join(dir, name+".json")
			if err := writeSplines(splineFile, sc.Splines); err != nil {
				panic(err)
			}
			out.Scenarios = append(out.Scenarios, jsonScenario{
				Name:       name,
				Splines:    filepath.Base(splineFile),
				Width:      sc.Width,
				Height:     sc.Height,
				Iterations: sc.Iterations,
				Thickness:  sc.Thickness,
				Seed:       sc.Seed,
			})
		}
	}

	f, err := os.Create(filepath.Join(dir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name       string  `json:"name"`
	Splines    string  `json:"splines"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Iterations int     `json:"iterations"`
	Thickness  float64 `json:"thickness"`
	Seed       uint64  `json:"seed"`
}

func writeSplines(name string, defs []testcases.SplineDef) error {
	splines := chaos.DefaultSplines()
	if defs != nil {
		splines = splines[:0]
		for _, d := range defs {
			points := make([]chaos.Vec3, len(d.Points))
			for i, p := range d.Points {
				points[i] = chaos.Vec3{X: p.X, Y: p.Y}
			}
			s, err := chaos.NewSpline(points, d.Knots, d.Degree)
			if err != nil {
				return err
			}
			splines = append(splines, s)
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = chaos.EncodeSplines(f, splines)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
