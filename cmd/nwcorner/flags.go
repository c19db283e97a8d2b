package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// floatList is a comma-separated list of floats, eg "0.2,0.5,0.3".
type floatList []float64

// UnmarshalFlag implements flags.Unmarshaler.
func (l *floatList) UnmarshalFlag(value string) error {
	var out floatList
	for _, part := range splitList(value) {
		var f, err = strconv.ParseFloat(part, 64)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", part)
		}
		out = append(out, f)
	}
	*l = out
	return nil
}

// intList is a comma-separated list of indices, eg "2,0,1".
type intList []int

// UnmarshalFlag implements flags.Unmarshaler.
func (l *intList) UnmarshalFlag(value string) error {
	var out intList
	for _, part := range splitList(value) {
		var n, err = strconv.Atoi(part)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", part)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
