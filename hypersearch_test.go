package orthopack

import "testing"

// TestHypersearchCorrectness checks that hypersearch never returns an
// objective worse than the default-strategy solve it starts from
// (spec.md §8).
func TestHypersearchCorrectness(t *testing.T) {
	containers := []ContainerSpec{{ID: "cont", W: 10, L: 10}}
	items := []ItemSpec{
		{ID: "a", W: 3, L: 4},
		{ID: "b", W: 4, L: 3},
		{ID: "c", W: 2, L: 5},
		{ID: "d", W: 5, L: 2},
		{ID: "e", W: 3, L: 3},
	}

	baseline, err := NewProblem(containers, items, DefaultSettings())
	if err != nil {
		t.Fatalf("NewProblem failed: %v", err)
	}
	if err := baseline.Solve(nil); err != nil {
		t.Fatalf("baseline Solve failed: %v", err)
	}
	before := baseline.CalculateObjValue()

	p, err := NewProblem(containers, items, DefaultSettings())
	if err != nil {
		t.Fatalf("NewProblem failed: %v", err)
	}
	if err := p.Hypersearch("", "", false, true, false); err != nil {
		t.Fatalf("Hypersearch failed: %v", err)
	}
	after := p.CalculateObjValue()

	if after < before {
		t.Errorf("hypersearch objective %v is worse than default-strategy solve %v", after, before)
	}
}

// TestHypersearchMultiWorkerMatchesSingleWorker checks that splitting the
// same strategy pool across several workers never finds a worse solution
// than running it on one (spec.md §4.7, §5).
func TestHypersearchMultiWorkerMatchesSingleWorker(t *testing.T) {
	containers := []ContainerSpec{{ID: "cont", W: 12, L: 12}}
	items := []ItemSpec{
		{ID: "a", W: 4, L: 6},
		{ID: "b", W: 6, L: 4},
		{ID: "c", W: 3, L: 3},
		{ID: "d", W: 5, L: 5},
	}

	single, err := NewProblem(containers, items, DefaultSettings())
	if err != nil {
		t.Fatalf("NewProblem failed: %v", err)
	}
	if err := single.Hypersearch("", "", false, true, true); err != nil {
		t.Fatalf("single-worker Hypersearch failed: %v", err)
	}
	singleObj := single.CalculateObjValue()

	settings := DefaultSettings()
	settings.WorkersNum = 4
	multi, err := NewProblem(containers, items, settings)
	if err != nil {
		t.Fatalf("NewProblem failed: %v", err)
	}
	if err := multi.Hypersearch("", "", false, true, true); err != nil {
		t.Fatalf("multi-worker Hypersearch failed: %v", err)
	}
	multiObj := multi.CalculateObjValue()

	if multiObj < singleObj {
		t.Errorf("multi-worker objective %v is worse than single-worker %v", multiObj, singleObj)
	}
}
