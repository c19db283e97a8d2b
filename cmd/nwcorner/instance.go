package main

import (
	"os"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Instance is one transport problem, as read from an instances file.
type Instance struct {
	Name    string      `yaml:"name"`
	Source  []float64   `yaml:"source"`
	Target  []float64   `yaml:"target"`
	RowPerm []int       `yaml:"row_perm,omitempty"`
	ColPerm []int       `yaml:"col_perm,omitempty"`
	Cost    [][]float64 `yaml:"cost,omitempty"`
	Exact   bool        `yaml:"exact,omitempty"`
}

// InstanceFile is the top-level document of an instances file.
type InstanceFile struct {
	Instances []Instance `yaml:"instances"`
}

// Result is the outcome of solving one Instance.
type Result struct {
	Name    string      `yaml:"name"`
	Plan    [][]float64 `yaml:"plan"`
	Support int         `yaml:"support"`
	Vertex  bool        `yaml:"vertex"`
	Cost    *float64    `yaml:"cost,omitempty"`
}

// decodeInstances parses YAML instances and rejects unnamed or empty entries.
func decodeInstances(b []byte) ([]Instance, error) {
	var doc InstanceFile
	if err := yaml.UnmarshalStrict(b, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding instances")
	}
	for i, inst := range doc.Instances {
		if inst.Name == "" {
			return nil, errors.Errorf("instance %d: name is required", i)
		}
	}
	return doc.Instances, nil
}

// loadInstances reads and decodes the instances file at path.
func loadInstances(path string) ([]Instance, error) {
	var b, err = os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return decodeInstances(b)
}

// solve runs the allocator (permuted when either permutation is present)
// and evaluates the optional cost matrix.
func (inst Instance) solve(extra ...transport.Option) (Result, error) {
	var opts = append([]transport.Option{}, extra...)
	if inst.Exact {
		opts = append(opts, transport.WithExactArithmetic())
	}
	opts = append(opts, transport.LogObserver(log.WithField("instance", inst.Name))...)

	var source, target = transport.Histogram(inst.Source), transport.Histogram(inst.Target)
	var plan *transport.Plan
	var err error

	if inst.RowPerm != nil || inst.ColPerm != nil {
		var rp, cp = transport.Permutation(inst.RowPerm), transport.Permutation(inst.ColPerm)
		if rp == nil {
			rp = transport.Identity(len(source))
		}
		if cp == nil {
			cp = transport.Identity(len(target))
		}
		plan, err = transport.AllocatePermuted(source, target, rp, cp, opts...)
	} else {
		plan, err = transport.Allocate(source, target, opts...)
	}
	if err != nil {
		return Result{}, errors.WithMessagef(err, "instance %q", inst.Name)
	}

	var res = Result{
		Name:    inst.Name,
		Plan:    plan.ToSlices(),
		Support: plan.Support(0),
		Vertex:  plan.IsVertex(0),
	}
	if inst.Cost != nil {
		var c, err = plan.Cost(inst.Cost)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "instance %q cost", inst.Name)
		}
		res.Cost = &c
	}
	return res, nil
}
