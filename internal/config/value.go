package config

import (
	"strconv"
)

// StringValue represents a string configuration value with its source.
type StringValue struct {
	Value  string
	Source ConfigSource
}

// IntValue represents an int configuration value with its source.
type IntValue struct {
	Value  int
	Source ConfigSource
}

// BoolValue represents a bool configuration value with its source.
type BoolValue struct {
	Value  bool
	Source ConfigSource
}

// NewStringValue creates a new StringValue with default source.
func NewStringValue(value string) StringValue {
	return StringValue{Value: value, Source: SourceDefault}
}

// NewIntValue creates a new IntValue with default source.
func NewIntValue(value int) IntValue {
	return IntValue{Value: value, Source: SourceDefault}
}

// NewBoolValue creates a new BoolValue with default source.
func NewBoolValue(value bool) BoolValue {
	return BoolValue{Value: value, Source: SourceDefault}
}

// apply overwrites v with *p from source when p is set.
func (v *StringValue) apply(p *string, source ConfigSource) {
	if p != nil {
		v.Value, v.Source = *p, source
	}
}

func (v *IntValue) apply(p *int, source ConfigSource) {
	if p != nil {
		v.Value, v.Source = *p, source
	}
}

func (v *BoolValue) apply(p *bool, source ConfigSource) {
	if p != nil {
		v.Value, v.Source = *p, source
	}
}

func (v StringValue) String() string { return v.Value }

func (v IntValue) String() string { return strconv.Itoa(v.Value) }

func (v BoolValue) String() string { return strconv.FormatBool(v.Value) }
