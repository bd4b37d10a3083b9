// Package enummatcher provides test matchers for built enum objects.
package enummatcher

import (
	"fmt"

	"github.com/partite-ai/enumdef/enum"
)

// Matcher validates a built enum object and returns an error if
// validation fails.
type Matcher func(*enum.Object) error

// ObjectMatcher builds matchers for enum.Object
type ObjectMatcher struct {
	validators []func(*enum.Object) error
}

// MatchObject creates a new ObjectMatcher with optional validators
func MatchObject(validators ...func(*enum.Object) error) *ObjectMatcher {
	return &ObjectMatcher{
		validators: validators,
	}
}

// WithName validates the enum's binding name
func (m *ObjectMatcher) WithName(name string) *ObjectMatcher {
	m.validators = append(m.validators, func(o *enum.Object) error {
		if o.Name() != name {
			return fmt.Errorf("name mismatch: expected %q, got %q", name, o.Name())
		}
		return nil
	})
	return m
}

// WithMembers validates the exact member sequence in declaration order
func (m *ObjectMatcher) WithMembers(members ...enum.Member) *ObjectMatcher {
	m.validators = append(m.validators, func(o *enum.Object) error {
		got := o.Members()
		if len(got) != len(members) {
			return fmt.Errorf("member count mismatch: expected %d, got %d", len(members), len(got))
		}
		for i, want := range members {
			if got[i].Name != want.Name {
				return fmt.Errorf("member %d: expected name %s, got %s", i, want.Name, got[i].Name)
			}
			if !enum.Equal(got[i].Value, want.Value) {
				return fmt.Errorf("member %s: expected value %s, got %s",
					want.Name, enum.Format(want.Value), enum.Format(got[i].Value))
			}
		}
		return nil
	})
	return m
}

// WithValueOf validates a name lookup
func (m *ObjectMatcher) WithValueOf(name enum.Key, value enum.Value) *ObjectMatcher {
	m.validators = append(m.validators, func(o *enum.Object) error {
		got, ok := o.Value(name)
		if !ok {
			return fmt.Errorf("member %s not found", name)
		}
		if !enum.Equal(got, value) {
			return fmt.Errorf("member %s: expected %s, got %s", name, enum.Format(value), enum.Format(got))
		}
		return nil
	})
	return m
}

// WithKeyOf validates a reverse lookup
func (m *ObjectMatcher) WithKeyOf(value enum.Value, name enum.Key) *ObjectMatcher {
	m.validators = append(m.validators, func(o *enum.Object) error {
		got, ok := o.KeyOf(value)
		if !ok {
			return fmt.Errorf("no member with value %s", enum.Format(value))
		}
		if got != name {
			return fmt.Errorf("value %s: expected member %s, got %s", enum.Format(value), name, got)
		}
		return nil
	})
	return m
}

// Match validates the object against all matchers
func (m *ObjectMatcher) Match(o *enum.Object) error {
	if o == nil {
		return fmt.Errorf("expected an enum object, got nil")
	}
	for i, validator := range m.validators {
		if err := validator(o); err != nil {
			return fmt.Errorf("object validator %d failed: %w", i, err)
		}
	}
	return nil
}
