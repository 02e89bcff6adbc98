package probe

import (
	"context"
	"errors"
	"testing"
)

func TestRunAll(t *testing.T) {
	checks := []Check{
		{
			Name:     "LLM Provider",
			Run:      func(context.Context) error { return nil },
			Critical: true,
		},
		{
			Name:     "Places API",
			Run:      func(context.Context) error { return errors.New("no API key") },
			Critical: false,
		},
	}

	results := RunAll(context.Background(), checks)
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("first check: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("second check should have failed")
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		wantErr bool
	}{
		{
			name:    "all pass",
			results: []Result{{Check: Check{Name: "a", Critical: true}}},
			wantErr: false,
		},
		{
			name: "critical failure",
			results: []Result{
				{Check: Check{Name: "a", Critical: true}, Err: errors.New("down")},
			},
			wantErr: true,
		},
		{
			name: "non-critical failure tolerated",
			results: []Result{
				{Check: Check{Name: "a", Critical: false}, Err: errors.New("down")},
				{Check: Check{Name: "b", Critical: true}},
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Evaluate(tt.results)
			if (err != nil) != tt.wantErr {
				t.Errorf("Evaluate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
