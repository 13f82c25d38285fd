package pointrace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"gopkg.in/yaml.v3"
)

var ErrInvalidParams = errors.New("invalid point race params")

// Calibrated for a 1280x720 capture.
var (
	DefaultTeamROI = []int{271, 337, 178, 29}

	DefaultEnemyROIs = [][]int{
		{843, 236, 100, 30},
		{843, 352, 96, 31},
		{843, 472, 103, 27},
		{843, 589, 97, 29},
	}
)

// Params configures FindToChallenge. Every field may be overridden from the
// node's custom_recognition_param; missing fields keep their defaults.
type Params struct {
	TeamROI     []int   `json:"team_roi" yaml:"team_roi"`
	EnemyROIs   [][]int `json:"enemy_rois" yaml:"enemy_rois"`
	MetricEntry string  `json:"metric_entry" yaml:"metric_entry"`
	ButtonEntry string  `json:"button_entry" yaml:"button_entry"`
	Debug       bool    `json:"debug" yaml:"debug"`
	OutputDir   string  `json:"output_dir" yaml:"output_dir"`

	// ButtonROIs replaces the button node when running without the host.
	ButtonROIs [][]int `json:"button_rois,omitempty" yaml:"button_rois,omitempty"`
}

func DefaultParams() Params {
	enemies := make([][]int, len(DefaultEnemyROIs))
	for i, roi := range DefaultEnemyROIs {
		enemies[i] = append([]int(nil), roi...)
	}
	return Params{
		TeamROI:     append([]int(nil), DefaultTeamROI...),
		EnemyROIs:   enemies,
		MetricEntry: DefaultMetricEntry,
		ButtonEntry: DefaultButtonEntry,
	}
}

// ParseParams decodes raw over DefaultParams. raw may be empty, a JSON object,
// or a JSON string holding an object.
func ParseParams(raw string) (Params, error) {
	p := DefaultParams()

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return p, nil
	}

	data := []byte(raw)
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		if strings.TrimSpace(inner) == "" {
			return p, nil
		}
		data = []byte(inner)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	p.fillEntries()
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadCalibration reads Params from a YAML file over DefaultParams.
func LoadCalibration(path string) (Params, error) {
	p := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read calibration %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("%w: %s: %v", ErrInvalidParams, path, err)
	}
	p.fillEntries()
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// fillEntries restores the default node names an override blanked out.
func (p *Params) fillEntries() {
	if p.MetricEntry == "" {
		p.MetricEntry = DefaultMetricEntry
	}
	if p.ButtonEntry == "" {
		p.ButtonEntry = DefaultButtonEntry
	}
}

func (p Params) Validate() error {
	if err := validROI("team_roi", p.TeamROI); err != nil {
		return err
	}
	if len(p.EnemyROIs) == 0 {
		return fmt.Errorf("%w: enemy_rois is empty", ErrInvalidParams)
	}
	for i, roi := range p.EnemyROIs {
		if err := validROI(fmt.Sprintf("enemy_rois[%d]", i), roi); err != nil {
			return err
		}
	}
	for i, roi := range p.ButtonROIs {
		if err := validROI(fmt.Sprintf("button_rois[%d]", i), roi); err != nil {
			return err
		}
	}
	return nil
}

func validROI(field string, roi []int) error {
	if len(roi) != 4 {
		return fmt.Errorf("%w: %s must have 4 values, got %d", ErrInvalidParams, field, len(roi))
	}
	if roi[0] < 0 || roi[1] < 0 || roi[2] <= 0 || roi[3] <= 0 {
		return fmt.Errorf("%w: %s %v is not a valid rectangle", ErrInvalidParams, field, roi)
	}
	return nil
}

// Reference returns the own team ROI. Params must have passed Validate.
func (p Params) Reference() maa.Rect {
	return toRect(p.TeamROI)
}

// Candidates returns the enemy rows in priority order.
func (p Params) Candidates() []Candidate {
	out := make([]Candidate, len(p.EnemyROIs))
	for i, roi := range p.EnemyROIs {
		out[i] = Candidate{Index: i, ROI: toRect(roi)}
	}
	return out
}

func toRect(r []int) maa.Rect {
	return maa.Rect{r[0], r[1], r[2], r[3]}
}
