package orthopack

// Settings carries the optional, validated configuration knobs the core
// consumes. Figure/rendering sub-settings are an explicit collaborator
// concern (spec.md §6) and are not modeled here.
type Settings struct {
	// MaxTimeInSeconds bounds local search and hypersearch wall-clock time.
	// Checked between local-search nodes and between hypersearch
	// strategies, never mid-construction. Default 60.
	MaxTimeInSeconds int
	// WorkersNum is the number of parallel hypersearch workers. Default 1
	// (single-worker path).
	WorkersNum int
	// Rotation allows items to be placed rotated 90 degrees. Default true.
	Rotation bool
}

// DefaultSettings returns the settings used when none are supplied.
func DefaultSettings() Settings {
	return Settings{MaxTimeInSeconds: 60, WorkersNum: 1, Rotation: true}
}

func (s Settings) validate() error {
	if s.MaxTimeInSeconds <= 0 {
		return ErrSettingsMaxTime
	}
	if s.WorkersNum <= 0 {
		return ErrSettingsWorkersNum
	}
	return nil
}
