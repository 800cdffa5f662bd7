package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/growthsim/internal/econ"
)

type ExportData struct {
	ID          string             `json:"id"`
	Model       string             `json:"model"`
	Alpha       float64            `json:"alpha"`
	Delta       float64            `json:"delta"`
	Savings     float64            `json:"savings"`
	Horizon     int                `json:"horizon"`
	SteadyState float64            `json:"steadyState"`
	Path        []float64          `json:"path"`
	Metrics     map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, path econ.Path) ExportData {
	return ExportData{
		ID:          meta.ID,
		Model:       meta.Model,
		Alpha:       meta.Alpha,
		Delta:       meta.Delta,
		Savings:     meta.Savings,
		Horizon:     meta.Horizon,
		SteadyState: meta.SteadyState,
		Path:        path,
		Metrics:     meta.Metrics,
	}
}

func ExportJSON(w io.Writer, meta *RunMetadata, path econ.Path) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, path))
}

func ExportJSONFile(filename string, meta *RunMetadata, path econ.Path) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, path)
}
