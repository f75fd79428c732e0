// ABOUTME: Tests for contract defaults, options, drag math, and segue validation
// ABOUTME: Includes the fatal MustPerform path for destinations without a contract

package present

import (
	"errors"
	"testing"
	"time"
)

func TestNewContract_Defaults(t *testing.T) {
	t.Parallel()

	c := NewContract(Size{Width: 10, Height: 20})
	if c.Position != Bottom {
		t.Errorf("Position = %s; want bottom", c.Position)
	}
	if c.AnimateTime != 250*time.Millisecond {
		t.Errorf("AnimateTime = %v; want 250ms", c.AnimateTime)
	}
	if !c.CanPanDown || !c.CanClickBackgroundDismiss {
		t.Errorf("CanPanDown=%v CanClickBackgroundDismiss=%v; want both true", c.CanPanDown, c.CanClickBackgroundDismiss)
	}
}

func TestNewContract_Options(t *testing.T) {
	t.Parallel()

	c := NewContract(Size{Width: 10, Height: 20},
		WithPosition(Center),
		WithAnimateTime(time.Second),
		WithPanDown(false),
		WithBackgroundDismiss(false),
	)
	want := Contract{
		ContentSize: Size{Width: 10, Height: 20},
		Position:    Center,
		AnimateTime: time.Second,
	}
	if c != want {
		t.Errorf("contract = %+v; want %+v", c, want)
	}
}

func TestContract_SnapshotFixesNonPositiveDuration(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		c := NewContract(Size{}, WithAnimateTime(d)).snapshot()
		if c.AnimateTime != DefaultAnimateTime {
			t.Errorf("AnimateTime(%v) snapshot = %v; want %v", d, c.AnimateTime, DefaultAnimateTime)
		}
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{in: "top", want: Top},
		{in: " Bottom ", want: Bottom},
		{in: "CENTER", want: Center},
		{in: "left", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePosition(%q) = %s; want %s", tt.in, got, tt.want)
		}
	}
}

func TestDismissThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		extent, want float64
	}{
		{300, 100},
		{200, 100},
		{150, 75},
		{0, 0},
	}
	for _, tt := range tests {
		if got := DismissThreshold(tt.extent); got != tt.want {
			t.Errorf("DismissThreshold(%v) = %v; want %v", tt.extent, got, tt.want)
		}
	}
}

func TestDragDeltaAndAlphaBounds(t *testing.T) {
	t.Parallel()

	for _, extent := range []float64{0, 1, 37, 300} {
		for raw := -1000.0; raw <= 1000; raw += 37 {
			for _, pos := range []Position{Top, Bottom} {
				d := DragDelta(pos, 0, raw, extent)
				if d < 0 || d > extent {
					t.Errorf("DragDelta(%s, %v, extent %v) = %v; out of [0,%v]", pos, raw, extent, d, extent)
				}
				a := BackdropAlpha(d, extent)
				if a < 0 || a > 1 {
					t.Errorf("BackdropAlpha(%v, %v) = %v; out of [0,1]", d, extent, a)
				}
			}
		}
	}
	if d := DragDelta(Center, 0, 500, 100); d != 0 {
		t.Errorf("DragDelta(center) = %v; want 0", d)
	}
}

type plainScreen struct{}

type sheetScreen struct{}

func (sheetScreen) PresentationContract() Contract {
	return NewContract(Size{Width: 10, Height: 10})
}

func TestSegue_Perform(t *testing.T) {
	t.Parallel()

	var got Presentable
	src := PresenterFunc(func(p Presentable) error {
		got = p
		return nil
	})

	if err := (Segue{Identifier: "show", Source: src, Destination: sheetScreen{}}).Perform(); err != nil {
		t.Fatalf("Perform() error: %v", err)
	}
	if _, ok := got.(sheetScreen); !ok {
		t.Errorf("presented %T; want sheetScreen", got)
	}
}

func TestSegue_ContractViolation(t *testing.T) {
	t.Parallel()

	s := Segue{Identifier: "broken", Source: PresenterFunc(func(Presentable) error { return nil }), Destination: plainScreen{}}
	err := s.Perform()
	if !errors.Is(err, ErrContractViolation) {
		t.Fatalf("Perform() = %v; want ErrContractViolation", err)
	}
	var cv *ContractViolationError
	if !errors.As(err, &cv) || cv.Segue != "broken" {
		t.Errorf("error = %#v; want ContractViolationError for \"broken\"", err)
	}
}

func TestSegue_MustPerformPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrContractViolation) {
			t.Errorf("recovered %v; want ErrContractViolation", r)
		}
	}()
	Segue{Identifier: "broken", Destination: plainScreen{}}.MustPerform()
	t.Error("MustPerform did not panic")
}

func TestSegue_NoSource(t *testing.T) {
	t.Parallel()

	err := Segue{Identifier: "x", Destination: sheetScreen{}}.Perform()
	if err == nil || errors.Is(err, ErrContractViolation) {
		t.Errorf("Perform() = %v; want missing source error", err)
	}
}
