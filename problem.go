package orthopack

import (
	"io"
	"log/slog"
	"math"
	"time"
)

// posInf is the global-optimum sentinel (spec.md §4.6 / §9): the solver
// only maximises, so this value is, by construction, never reached.
var posInf = math.Inf(1)

// ContainerSpec is the input shape for declaring a bin-packing container.
type ContainerSpec struct {
	ID string
	W  int
	L  int
}

// ItemSpec is the input shape for declaring an item.
type ItemSpec struct {
	ID string
	W  int
	L  int
}

// Problem is the public facade: it owns containers, items, settings, the
// point-selection strategy, and the most recent solution, and wires the
// Constructor, Multi-container Driver, Local Search, and Hypersearch
// together. Containers and items are plain value types (Design Notes §9):
// no back-references, no cycles; every mutating setter invalidates the
// previously retained solution.
type Problem struct {
	containers      []Container
	containerOrder  []string
	items           map[string]Item
	itemOrder       []string

	settings Settings
	strategy Strategy

	stripPack          bool
	stripPackWidth     int
	containerHeight    int
	containerMinHeight *int
	heightsHistory     []int

	solution           Solution
	objValPerContainer map[string]float64

	Logger *slog.Logger
}

// discardLogger is the default Logger the constructors install; it drops
// all output. Logger is called without a nil check, so callers replacing
// it must supply a non-nil *slog.Logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewProblem constructs a bin-packing problem from containers declared in
// order, items declared in order, and settings.
func NewProblem(containers []ContainerSpec, items []ItemSpec, settings Settings) (*Problem, error) {
	if len(containers) == 0 {
		return nil, ErrContainersMissing
	}
	if len(items) == 0 {
		return nil, ErrItemsMissing
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}

	p := &Problem{
		settings: settings,
		strategy: DefaultStrategy,
		items:    make(map[string]Item, len(items)),
		Logger:   discardLogger(),
	}

	seen := make(map[string]bool, len(containers))
	for _, cs := range containers {
		if seen[cs.ID] {
			return nil, ErrContainersDuplicateID
		}
		seen[cs.ID] = true
		c, err := newContainer(cs.ID, cs.W, cs.L)
		if err != nil {
			return nil, err
		}
		p.containers = append(p.containers, c)
		p.containerOrder = append(p.containerOrder, c.ID)
	}

	for _, is := range items {
		it, err := newItem(is.ID, is.W, is.L)
		if err != nil {
			return nil, err
		}
		p.items[it.ID] = it
		p.itemOrder = append(p.itemOrder, it.ID)
	}

	return p, nil
}

// NewStripPackProblem constructs a strip-pack problem: one container of
// the given width, with an initially generous height (the container's
// effective length, shrunk by accepted local-search nodes).
func NewStripPackProblem(width int, items []ItemSpec, settings Settings) (*Problem, error) {
	if width <= 0 {
		return nil, ErrDimensionValue
	}
	if len(items) == 0 {
		return nil, ErrItemsMissing
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}

	p := &Problem{
		settings:       settings,
		strategy:       append(Strategy{}, DefaultStrategy...),
		items:          make(map[string]Item, len(items)),
		Logger:         discardLogger(),
		stripPack:      true,
		stripPackWidth: width,
		containerOrder: []string{StripPackContainerID},
	}

	itemsArea := 0
	for _, is := range items {
		it, err := newItem(is.ID, is.W, is.L)
		if err != nil {
			return nil, err
		}
		p.items[it.ID] = it
		p.itemOrder = append(p.itemOrder, it.ID)
		itemsArea += it.Area()
	}

	// The Python source derives an initial height bound from a
	// width/length ratio constant that was not part of the retrieved
	// pack; an equivalent, equally generous starting bound is the total
	// item area integer-divided by the strip width, plus one, doubled, so
	// the first construction run is extremely unlikely to run out of
	// room before local search starts shrinking it down.
	initHeight := itemsArea/width + 1
	p.containerHeight = initHeight * 2
	if p.containerHeight < 1 {
		p.containerHeight = 1
	}
	p.containers = []Container{{ID: StripPackContainerID, W: width, L: p.containerHeight}}

	return p, nil
}

// itemIDOrder returns the current declared item order.
func (p *Problem) itemIDOrder() []string {
	out := make([]string, len(p.itemOrder))
	copy(out, p.itemOrder)
	return out
}

// SetContainers replaces the container list. Rejected in strip-pack mode
// (spec.md §6, §7: "can't assign or change containers when solving strip
// packing").
func (p *Problem) SetContainers(containers []ContainerSpec) error {
	if p.stripPack {
		return ErrContainersStripPack
	}
	if len(containers) == 0 {
		return ErrContainersMissing
	}

	var newContainers []Container
	var order []string
	seen := make(map[string]bool, len(containers))
	for _, cs := range containers {
		if seen[cs.ID] {
			return ErrContainersDuplicateID
		}
		seen[cs.ID] = true
		c, err := newContainer(cs.ID, cs.W, cs.L)
		if err != nil {
			return err
		}
		newContainers = append(newContainers, c)
		order = append(order, c.ID)
	}

	p.containers = newContainers
	p.containerOrder = order
	p.invalidateSolution()
	return nil
}

// SetItems replaces the item set.
func (p *Problem) SetItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrItemsMissing
	}

	newItems := make(map[string]Item, len(items))
	var order []string
	for _, is := range items {
		it, err := newItem(is.ID, is.W, is.L)
		if err != nil {
			return err
		}
		newItems[it.ID] = it
		order = append(order, it.ID)
	}

	p.items = newItems
	p.itemOrder = order
	p.invalidateSolution()
	return nil
}

// SetStrategy replaces the point-selection strategy, validating it is
// duplicate-free, contains only known categories, and (when it lists all
// ten categories) ends with the fixed suffix matching the container mode.
// Shorter strategies are not checked against a suffix.
func (p *Problem) SetStrategy(strategy Strategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}
	if len(strategy) == int(numCategories) {
		suffix := binPackSuffix
		if p.stripPack {
			suffix = stripPackSuffix
		}
		got := strategy[len(strategy)-len(suffix):]
		for i, c := range suffix {
			if got[i] != c {
				return ErrStrategyWrongForMode
			}
		}
	}
	p.strategy = strategy
	p.invalidateSolution()
	return nil
}

// SetContainerHeight sets the strip-pack container's effective length.
// Rejected outside strip-pack mode, and rejected below containerMinHeight
// when set.
func (p *Problem) SetContainerHeight(height int) error {
	if !p.stripPack {
		return ErrContainersStripPack
	}
	if height <= 0 {
		return ErrDimensionValue
	}
	if p.containerMinHeight != nil && height < *p.containerMinHeight {
		return ErrDimensionStripMinHeight
	}
	p.containerHeight = height
	p.containers[0] = Container{ID: StripPackContainerID, W: p.stripPackWidth, L: height}
	p.invalidateSolution()
	return nil
}

// SetContainerMinHeight sets (or clears, with 0) the lower bound local
// search and the height setter must respect.
func (p *Problem) SetContainerMinHeight(minHeight int) error {
	if !p.stripPack {
		return ErrContainersStripPack
	}
	if minHeight == 0 {
		p.containerMinHeight = nil
		p.invalidateSolution()
		return nil
	}
	if minHeight <= 0 {
		return ErrDimensionValue
	}
	if minHeight > p.containerHeight {
		return ErrDimensionStripMinHeight
	}
	p.containerMinHeight = &minHeight
	p.invalidateSolution()
	return nil
}

func (p *Problem) invalidateSolution() {
	p.solution = nil
	p.objValPerContainer = nil
}

// Solve runs the Constructor pipeline, via the Multi-container Driver, in
// the given item order (or the declared order, if sequence is nil/empty),
// and sets the current solution and per-container objective values.
func (p *Problem) Solve(sequence []string) error {
	if len(sequence) == 0 {
		sequence = p.itemIDOrder()
	}
	return p.solve(sequence)
}

// solve is the unexported driver used internally by local search, which
// re-invokes it once per neighbour.
func (p *Problem) solve(sequence []string) error {
	ordered := make([]Item, 0, len(sequence))
	for _, id := range sequence {
		ordered = append(ordered, p.items[id])
	}

	solution := make(Solution, len(p.containerOrder))
	objPerContainer := make(map[string]float64, len(p.containerOrder))
	remaining := ordered

	for _, c := range p.containers {
		L := c.L
		if p.stripPack {
			L = p.containerHeight
		}
		res := construct(c.W, L, remaining, p.settings.Rotation, p.strategy, p.stripPack)
		solution[c.ID] = res.placements
		objPerContainer[c.ID] = res.objValue
		remaining = res.remaining
		if len(remaining) == 0 {
			break
		}
	}

	for _, c := range p.containers {
		if _, ok := solution[c.ID]; !ok {
			solution[c.ID] = make(map[string]Placement)
			objPerContainer[c.ID] = 0
		}
	}

	p.solution = solution
	p.objValPerContainer = objPerContainer
	return nil
}

// calculateObjValue aggregates per-container objectives per spec.md §3:
// the sum if there is one container; otherwise the sum of all but the
// last plus 0.7 times the last (biasing towards filling earlier bins).
func (p *Problem) calculateObjValue() float64 {
	if len(p.containerOrder) == 1 {
		return p.objValPerContainer[p.containerOrder[0]]
	}
	total := 0.0
	for i, id := range p.containerOrder {
		if i == len(p.containerOrder)-1 {
			total += 0.7 * p.objValPerContainer[id]
		} else {
			total += p.objValPerContainer[id]
		}
	}
	return total
}

// CalculateObjValue is the exported accessor for the current solution's
// aggregate objective.
func (p *Problem) CalculateObjValue() float64 {
	return p.calculateObjValue()
}

// getInitSolution evaluates the current declared sequence and returns it
// as the initial local-search incumbent.
func (p *Problem) getInitSolution() localSearchResult {
	_ = p.solve(p.itemIDOrder())
	return p.getSolution()
}

// getSolution snapshots the current solution and per-container objectives.
// The snapshot goes through the solution arena (Design Notes §9) rather
// than a nested-map deep copy.
func (p *Problem) getSolution() localSearchResult {
	arena := newSolutionArena(p.solution, p.containerOrder)
	objCopy := make(map[string]float64, len(p.objValPerContainer))
	for k, v := range p.objValPerContainer {
		objCopy[k] = v
	}
	return localSearchResult{
		solution:           arena.toSolution(p.containerOrder),
		objValPerContainer: objCopy,
	}
}

// LocalSearch runs the 2-opt hill climb starting from the current item
// sequence, and adopts the retained solution as current.
func (p *Problem) LocalSearch(throttle bool) error {
	if len(p.containers) == 0 {
		return ErrContainersMissing
	}
	result := p.runLocalSearch(throttle, time.Now())
	p.solution = result.solution
	p.objValPerContainer = result.objValPerContainer
	return nil
}

// Solution returns the current solution snapshot.
func (p *Problem) Solution() Solution {
	if p.solution == nil {
		return nil
	}
	return p.solution.clone()
}

// ObjValuePerContainer returns a copy of the current per-container
// objective values.
func (p *Problem) ObjValuePerContainer() map[string]float64 {
	out := make(map[string]float64, len(p.objValPerContainer))
	for k, v := range p.objValPerContainer {
		out[k] = v
	}
	return out
}

// Items returns a copy of the current item set, for use by SortItems /
// OrientItems callers that want to mutate and feed back via ApplyItems.
func (p *Problem) Items() []Item {
	out := make([]Item, 0, len(p.itemOrder))
	for _, id := range p.itemOrder {
		out = append(out, p.items[id])
	}
	return out
}

// ApplyItems writes back the items after an in-place SortItems/OrientItems
// mutation of the slice returned by Items: each item's dimensions are
// updated, and the slice's order becomes the new declared item order.
func (p *Problem) ApplyItems(items []Item) {
	for _, it := range items {
		p.items[it.ID] = it
	}
	order := make([]string, len(items))
	for i, it := range items {
		order[i] = it.ID
	}
	p.itemOrder = order
	p.invalidateSolution()
}

// ContainerMode reports whether the problem is in strip-pack mode.
func (p *Problem) ContainerMode() bool {
	return p.stripPack
}

// ContainerHeight returns the current strip-pack container height (0
// outside strip-pack mode).
func (p *Problem) ContainerHeight() int {
	return p.containerHeight
}

// HeightsHistory returns the sequence of container heights recorded by
// accepted local-search nodes in strip-pack mode.
func (p *Problem) HeightsHistory() []int {
	out := make([]int, len(p.heightsHistory))
	copy(out, p.heightsHistory)
	return out
}
