package boundary

import "testing"

func TestSetConditionRoundTrips(tst *testing.T) {
	b, err := New(nil, nil, nil, nil, nil, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := b.SetCondition(1, Dirichlet, []float64{50.0}); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cfg, ok := b.Config(1)
	if !ok {
		tst.Fatal("expected config 1 to be registered")
	}
	if cfg.Kind != Dirichlet || cfg.Params[0] != 50.0 {
		tst.Fatalf("round-trip mismatch: %+v", cfg)
	}
}

func TestSetConditionValidatesArity(tst *testing.T) {
	b, _ := New(nil, nil, nil, nil, nil, nil)
	if err := b.SetCondition(0, Robin, []float64{1.0}); err == nil {
		tst.Fatal("expected arity error for robin with one param")
	}
	if err := b.SetCondition(0, Neumann, []float64{1.0, 2.0}); err == nil {
		tst.Fatal("expected arity error for neumann with two params")
	}
}

func TestNewRejectsBadLocalIdx(tst *testing.T) {
	_, err := New([]int{0}, []int{2}, []int{0}, nil, nil, nil)
	if err == nil {
		tst.Fatal("expected error for local idx outside {0,1,-1}")
	}
}
