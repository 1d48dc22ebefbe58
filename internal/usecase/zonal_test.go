package usecase

import (
	"math"
	"testing"
	"time"

	"go.ngs.io/geocorr/internal/domain"
)

func TestZonalTideRequest_Validate(t *testing.T) {
	now := time.Date(2007, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     ZonalTideRequest
		wantErr bool
	}{
		{"t", ZonalTideRequest{T: ptr(0.08)}, false},
		{"jd", ZonalTideRequest{JD: ptr(2454465.5)}, false},
		{"mjd", ZonalTideRequest{MJD: ptr(54465.0)}, false},
		{"time", ZonalTideRequest{Time: &now}, false},
		{"none", ZonalTideRequest{}, true},
		{"two", ZonalTideRequest{T: ptr(0.08), MJD: ptr(54465.0)}, true},
		{"NaN", ZonalTideRequest{T: ptr(math.NaN())}, true},
	}

	for _, tt := range tests {
		err := tt.req.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: wantErr=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestZonalTideRequest_ValidateFirstNonFinite(t *testing.T) {
	req := ZonalTideRequest{T: ptr(math.NaN()), JD: ptr(math.Inf(1)), MJD: ptr(math.NaN())}

	for i := 0; i < 20; i++ {
		err := req.Validate()
		if err == nil || err.Error() != "t must be a finite number" {
			t.Fatalf("run %d: expected t error, got %v", i, err)
		}
	}
}

func TestZonalTideUseCase_Execute(t *testing.T) {
	uc := NewZonalTideUseCase(nil)

	resp, err := uc.Execute(ZonalTideRequest{T: ptr(0.07995893223819302)})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	want := domain.ZonalTides(0.07995893223819302)
	if resp.DUT != want.DUT || resp.DLOD != want.DLOD || resp.DOmega != want.DOmega {
		t.Errorf("expected %+v, got dut=%v dlod=%v domega=%v", want, resp.DUT, resp.DLOD, resp.DOmega)
	}
	if math.Abs(resp.DUT-7.983287678576557e-2) > 1e-14 {
		t.Errorf("dUT: expected 7.983287678576557e-2, got %.18e", resp.DUT)
	}
	if resp.Time[:10] != "2007-12-31" {
		t.Errorf("expected epoch on 2007-12-31, got %s", resp.Time)
	}

	omega := resp.Arguments["Omega"]
	if math.Abs(omega.Deg-omega.Rad*180/math.Pi) > 1e-12 {
		t.Errorf("Omega degrees %.12f inconsistent with radians %.12f", omega.Deg, omega.Rad)
	}
	if len(resp.Arguments) != 5 {
		t.Errorf("expected 5 arguments, got %d", len(resp.Arguments))
	}
}

func TestZonalTideUseCase_EpochForms(t *testing.T) {
	uc := NewZonalTideUseCase(nil)
	ref := time.Date(2007, 12, 31, 0, 0, 0, 0, time.UTC)

	requests := map[string]ZonalTideRequest{
		"jd":   {JD: ptr(2454465.5)},
		"mjd":  {MJD: ptr(54465.0)},
		"time": {Time: &ref},
	}

	for name, req := range requests {
		resp, err := uc.Execute(req)
		if err != nil {
			t.Fatalf("%s: Execute error: %v", name, err)
		}
		if math.Abs(resp.T-0.07995893223819302) > 1e-12 {
			t.Errorf("%s: expected T=0.07995893223819302, got %.17f", name, resp.T)
		}
		if math.Abs(resp.DUT-7.983287678576557e-2) > 1e-9 {
			t.Errorf("%s: dUT %.12e", name, resp.DUT)
		}
	}
}

func TestZonalTideUseCase_SingleProviderCall(t *testing.T) {
	var calls int
	provider := domain.ArgumentFunc(func(float64) domain.FundamentalArguments {
		calls++
		return domain.FundamentalArguments{L: float64(calls)}
	})
	uc := NewZonalTideUseCase(domain.NewZonalTideModel(provider))

	resp, err := uc.Execute(ZonalTideRequest{T: ptr(0.1)})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 provider call, got %d", calls)
	}
	if resp.Arguments["l"].Rad != 1 {
		t.Errorf("expected echoed l=1, got %v", resp.Arguments["l"].Rad)
	}

	want := domain.SumZonalTerms(domain.FundamentalArguments{L: 1}, domain.ZonalTideTerms())
	if resp.DUT != want.DUT || resp.DLOD != want.DLOD || resp.DOmega != want.DOmega {
		t.Errorf("corrections do not match echoed arguments: got dut=%v, want %v", resp.DUT, want.DUT)
	}
}

func TestZonalTideUseCase_InvalidRequest(t *testing.T) {
	uc := NewZonalTideUseCase(nil)
	if _, err := uc.Execute(ZonalTideRequest{}); err == nil {
		t.Error("expected error for empty request")
	}
}

func TestZonalTideUseCase_Terms(t *testing.T) {
	terms := NewZonalTideUseCase(nil).Terms()
	if len(terms) != 62 {
		t.Fatalf("expected 62 terms, got %d", len(terms))
	}
	if terms[0].Index != 1 || terms[61].Index != 62 {
		t.Errorf("unexpected indices %d..%d", terms[0].Index, terms[61].Index)
	}
	// The last row is the 18.6-year nodal term.
	if math.Abs(terms[61].PeriodDays-(-6798.38)) > 0.01 {
		t.Errorf("expected nodal period -6798.38 d, got %.2f", terms[61].PeriodDays)
	}
}
