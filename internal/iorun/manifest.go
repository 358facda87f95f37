package iorun

import (
	"fmt"
	"path/filepath"

	"github.com/gnames/gnfish/internal/iofs"
	"github.com/gnames/gnfish/pkg/report"
	"gopkg.in/yaml.v3"
)

// Manifest lists stations of a batch run.
type Manifest struct {
	Stations []Entry `yaml:"stations"`
}

// Entry is a station of a manifest. Relative paths are resolved
// against the directory of the manifest.
type Entry struct {
	Index     string `yaml:"index"`
	Reference string `yaml:"reference"`
	Sample    string `yaml:"sample"`
	Station   string `yaml:"station"`
}

// LoadManifest reads a batch manifest. All problems of the manifest are
// reported together.
func LoadManifest(path string) ([]Files, error) {
	data, err := iofs.ReadManifest(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, ManifestError(path, []string{err.Error()})
	}
	if len(m.Stations) == 0 {
		return nil, ManifestError(path, []string{"no stations found"})
	}

	dir := filepath.Dir(path)
	res := make([]Files, 0, len(m.Stations))
	var probs []string
	for i, v := range m.Stations {
		f, vprobs := v.files(dir)
		for _, p := range vprobs {
			probs = append(probs, fmt.Sprintf("station %d: %s", i+1, p))
		}
		res = append(res, f)
	}

	if len(probs) > 0 {
		return nil, ManifestError(path, probs)
	}
	return res, nil
}

func (e Entry) files(dir string) (Files, []string) {
	var probs []string
	idx, err := report.NewIndex(e.Index)
	if err != nil {
		probs = append(probs, err.Error())
	}
	if idx == report.NISECI && e.Reference == "" {
		probs = append(probs, "reference file is required by NISECI")
	}
	if e.Sample == "" {
		probs = append(probs, "sample file is missing")
	}
	if e.Station == "" {
		probs = append(probs, "station file is missing")
	}

	res := Files{
		Index:     idx,
		Reference: resolve(dir, e.Reference),
		Sample:    resolve(dir, e.Sample),
		Station:   resolve(dir, e.Station),
	}
	return res, probs
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
