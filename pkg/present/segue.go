// ABOUTME: Declarative wiring: named transitions whose destination must satisfy Presentable
// ABOUTME: Perform reports ContractViolationError; MustPerform turns it into a panic

package present

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a destination wired for presentation that does
// not implement Presentable. It is a programming error, not a runtime condition.
var ErrContractViolation = errors.New("destination does not implement the presentation contract")

// ContractViolationError names the offending transition and destination.
type ContractViolationError struct {
	Segue       string
	Destination any
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("segue %q: destination %T: %v", e.Segue, e.Destination, ErrContractViolation)
}

// Unwrap lets errors.Is match ErrContractViolation.
func (e *ContractViolationError) Unwrap() error {
	return ErrContractViolation
}

// Presenter presents a screen that satisfies the contract.
type Presenter interface {
	Present(p Presentable) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(p Presentable) error

// Present implements Presenter.
func (f PresenterFunc) Present(p Presentable) error { return f(p) }

// Segue is a named transition from Source to an untyped Destination, as
// produced by declarative wiring that cannot be checked at compile time.
type Segue struct {
	Identifier  string
	Source      Presenter
	Destination any
}

// Validate checks that Destination satisfies the contract.
func (s Segue) Validate() (Presentable, error) {
	p, ok := s.Destination.(Presentable)
	if !ok {
		return nil, &ContractViolationError{Segue: s.Identifier, Destination: s.Destination}
	}
	return p, nil
}

// Perform validates the destination and hands it to Source.
func (s Segue) Perform() error {
	p, err := s.Validate()
	if err != nil {
		return err
	}
	if s.Source == nil {
		return fmt.Errorf("segue %q: no source presenter", s.Identifier)
	}
	return s.Source.Present(p)
}

// MustPerform is Perform for wiring that must never be wrong.
func (s Segue) MustPerform() {
	if err := s.Perform(); err != nil {
		panic(err)
	}
}
