package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nlaurent/orthopack"
)

// problemFile is the on-disk JSON shape the CLI reads. It is a thin
// collaborator (spec.md §6): the core never parses JSON itself.
type problemFile struct {
	Mode        string               `json:"mode"`
	Containers  []containerFileEntry `json:"containers,omitempty"`
	StripWidth  int                  `json:"strip_width,omitempty"`
	Items       []itemFileEntry      `json:"items"`
	Settings    *settingsFileEntry   `json:"settings,omitempty"`
	Sequence    []string             `json:"sequence,omitempty"`
	Strategy    []string             `json:"strategy,omitempty"`
}

type containerFileEntry struct {
	ID string `json:"id"`
	W  int    `json:"w"`
	L  int    `json:"l"`
}

type itemFileEntry struct {
	ID string `json:"id"`
	W  int    `json:"w"`
	L  int    `json:"l"`
}

type settingsFileEntry struct {
	MaxTimeInSeconds int  `json:"max_time_in_seconds"`
	WorkersNum       int  `json:"workers_num"`
	Rotation         *bool `json:"rotation"`
}

func loadProblemFile(path string) (problemFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return problemFile{}, fmt.Errorf("reading problem file: %w", err)
	}
	var pf problemFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return problemFile{}, fmt.Errorf("parsing problem file: %w", err)
	}
	return pf, nil
}

func (pf problemFile) settings() orthopack.Settings {
	s := orthopack.DefaultSettings()
	if pf.Settings == nil {
		return s
	}
	if pf.Settings.MaxTimeInSeconds > 0 {
		s.MaxTimeInSeconds = pf.Settings.MaxTimeInSeconds
	}
	if pf.Settings.WorkersNum > 0 {
		s.WorkersNum = pf.Settings.WorkersNum
	}
	if pf.Settings.Rotation != nil {
		s.Rotation = *pf.Settings.Rotation
	}
	return s
}

func (pf problemFile) itemSpecs() []orthopack.ItemSpec {
	out := make([]orthopack.ItemSpec, 0, len(pf.Items))
	for _, it := range pf.Items {
		out = append(out, orthopack.ItemSpec{ID: it.ID, W: it.W, L: it.L})
	}
	return out
}

func (pf problemFile) containerSpecs() []orthopack.ContainerSpec {
	out := make([]orthopack.ContainerSpec, 0, len(pf.Containers))
	for _, c := range pf.Containers {
		out = append(out, orthopack.ContainerSpec{ID: c.ID, W: c.W, L: c.L})
	}
	return out
}

// buildProblem constructs a Problem from the parsed file, dispatching on
// mode ("bin" or "strip").
func buildProblem(pf problemFile) (*orthopack.Problem, error) {
	switch pf.Mode {
	case "strip":
		return orthopack.NewStripPackProblem(pf.StripWidth, pf.itemSpecs(), pf.settings())
	case "bin", "":
		return orthopack.NewProblem(pf.containerSpecs(), pf.itemSpecs(), pf.settings())
	default:
		return nil, fmt.Errorf("unknown mode %q (want \"bin\" or \"strip\")", pf.Mode)
	}
}

// parseStrategy resolves a list of category labels into a Strategy, or
// nil if labels is empty (caller keeps the problem's current strategy).
func parseStrategy(labels []string) (orthopack.Strategy, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	strat := make(orthopack.Strategy, 0, len(labels))
	for _, label := range labels {
		cat, ok := orthopack.ParseCategory(label)
		if !ok {
			return nil, fmt.Errorf("unknown strategy category %q", label)
		}
		strat = append(strat, cat)
	}
	return strat, nil
}

// solutionReport is the JSON shape printed to stdout after solve/hypersearch.
type solutionReport struct {
	Objective          float64            `json:"objective"`
	ObjValuePerContainer map[string]float64 `json:"obj_value_per_container"`
	Solution           orthopack.Solution `json:"solution"`
}

func report(p *orthopack.Problem) solutionReport {
	return solutionReport{
		Objective:            p.CalculateObjValue(),
		ObjValuePerContainer: p.ObjValuePerContainer(),
		Solution:             p.Solution(),
	}
}
