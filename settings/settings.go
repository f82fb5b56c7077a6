// Package settings implements the registry of recognized features
// (boolean knobs) and properties (typed values) that pipeline
// components contribute to a parser configuration.
package settings

import (
	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/internal/orderedset"
)

// Manager is the read/write view of a configuration that components
// receive on reset.
type Manager interface {
	Feature(id string) (bool, error)
	Property(id string) (any, error)
}

// Checker validates an identifier before it is set, and before an
// unset identifier is read. It runs after the recognition check, so it
// only sees recognized ids. Returning an error rejects the operation
// regardless of the value.
type Checker interface {
	CheckFeature(id string) error
	CheckProperty(id string) error
}

// Settings holds recognized identifiers and their values. The zero
// value is not usable; use New.
type Settings struct {
	recognizedFeatures   *orderedset.Set[string]
	recognizedProperties *orderedset.Set[string]
	features             map[string]bool
	properties           map[string]any
	parent               Manager
	checker              Checker
}

type Option func(*Settings)

// WithParent makes ids that are not recognized by these settings
// resolve through parent instead of failing.
func WithParent(parent Manager) Option {
	return func(s *Settings) {
		s.parent = parent
	}
}

// WithChecker installs an additional validation policy.
func WithChecker(c Checker) Option {
	return func(s *Settings) {
		s.checker = c
	}
}

func New(options ...Option) *Settings {
	s := &Settings{
		recognizedFeatures:   orderedset.New[string](),
		recognizedProperties: orderedset.New[string](),
		features:             make(map[string]bool),
		properties:           make(map[string]any),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// SetChecker replaces the validation policy. A nil Checker removes it.
func (s *Settings) SetChecker(c Checker) {
	s.checker = c
}

// AddRecognizedFeatures adds ids to the set of recognized features.
// Ids that are already recognized are ignored.
func (s *Settings) AddRecognizedFeatures(ids ...string) {
	for _, id := range ids {
		s.recognizedFeatures.Add(id)
	}
}

// AddRecognizedProperties adds ids to the set of recognized properties.
// Ids that are already recognized are ignored.
func (s *Settings) AddRecognizedProperties(ids ...string) {
	for _, id := range ids {
		s.recognizedProperties.Add(id)
	}
}

// RecognizedFeatures lists recognized feature ids in registration order.
func (s *Settings) RecognizedFeatures() []string {
	return s.recognizedFeatures.Values()
}

// RecognizedProperties lists recognized property ids in registration order.
func (s *Settings) RecognizedProperties() []string {
	return s.recognizedProperties.Values()
}

func (s *Settings) SetFeature(id string, state bool) error {
	if err := s.CheckFeature(id); err != nil {
		return err
	}
	if pdebug.Enabled {
		pdebug.Printf("settings: feature %s = %t", id, state)
	}
	s.features[id] = state
	return nil
}

// Feature returns the state of a feature. A recognized feature that
// was never set reads false.
func (s *Settings) Feature(id string) (bool, error) {
	if state, ok := s.features[id]; ok {
		return state, nil
	}
	if !s.recognizedFeatures.Has(id) && s.parent != nil {
		return s.parent.Feature(id)
	}
	if err := s.CheckFeature(id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *Settings) SetProperty(id string, value any) error {
	if err := s.CheckProperty(id); err != nil {
		return err
	}
	if pdebug.Enabled {
		pdebug.Printf("settings: property %s = %T", id, value)
	}
	s.properties[id] = value
	return nil
}

// Property returns the value of a property. A recognized property that
// was never set reads nil.
func (s *Settings) Property(id string) (any, error) {
	if value, ok := s.properties[id]; ok {
		return value, nil
	}
	if !s.recognizedProperties.Has(id) && s.parent != nil {
		return s.parent.Property(id)
	}
	if err := s.CheckProperty(id); err != nil {
		return nil, err
	}
	return nil, nil
}

// CheckFeature fails with a NotRecognized error unless id is
// recognized here or by the parent, then applies the Checker.
func (s *Settings) CheckFeature(id string) error {
	if !s.recognizedFeatures.Has(id) {
		if s.parent == nil {
			return FeatureNotRecognized(id)
		}
		if _, err := s.parent.Feature(id); err != nil {
			return err
		}
	}
	if s.checker != nil {
		return s.checker.CheckFeature(id)
	}
	return nil
}

// CheckProperty fails with a NotRecognized error unless id is
// recognized here or by the parent, then applies the Checker.
func (s *Settings) CheckProperty(id string) error {
	if !s.recognizedProperties.Has(id) {
		if s.parent == nil {
			return PropertyNotRecognized(id)
		}
		if _, err := s.parent.Property(id); err != nil {
			return err
		}
	}
	if s.checker != nil {
		return s.checker.CheckProperty(id)
	}
	return nil
}
