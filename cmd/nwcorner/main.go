// nwcorner is a demonstration driver for the transport package. It runs the
// reference North-West Corner cases, single problems given on the command
// line, batches of problems from a YAML file, and vertex enumeration.
package main

import (
	"context"
	"math"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/nwcorner/transport"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const iniFilename = "nwcorner.ini"

// Config is the top-level configuration object of nwcorner.
var Config = new(struct {
	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

// ProblemConfig describes one problem on the command line.
type ProblemConfig struct {
	Source  floatList `long:"source" required:"true" description:"Source histogram, comma separated"`
	Target  floatList `long:"target" required:"true" description:"Target histogram, comma separated"`
	Exact   bool      `long:"exact" env:"EXACT" description:"Use exact decimal arithmetic"`
	Epsilon float64   `long:"epsilon" env:"EPSILON" default:"1e-9" description:"Relative exhaustion threshold (0 for strict equality)"`
}

func (cfg ProblemConfig) options() ([]transport.Option, error) {
	var opts []transport.Option
	if cfg.Exact {
		opts = append(opts, transport.WithExactArithmetic())
	}
	if math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 0) || cfg.Epsilon < 0 {
		return nil, errors.Errorf("--epsilon must be finite and non-negative, got %g", cfg.Epsilon)
	}
	return append(opts, transport.WithEpsilon(cfg.Epsilon)), nil
}

type cmdDemo struct {
	Output OutputConfig `group:"Output"`
}

// demoInstances are the reference smoke cases.
var demoInstances = []Instance{
	{Name: "north-west", Source: []float64{0.2, 0.5, 0.3}, Target: []float64{0.5, 0.1, 0.4}, Exact: true},
	{Name: "permuted", Source: []float64{0.2, 0.5, 0.3}, Target: []float64{0.5, 0.1, 0.4},
		RowPerm: []int{2, 0, 1}, ColPerm: []int{2, 1, 0}, Exact: true},
	{Name: "single-row", Source: []float64{1.0}, Target: []float64{0.4, 0.6}},
}

func (cmd *cmdDemo) Execute([]string) error {
	initLog(Config.Log)
	var results, err = solveAll(demoInstances)
	if err != nil {
		return err
	}
	return writeResults(os.Stdout, cmd.Output.Format, results)
}

type cmdSolve struct {
	Problem ProblemConfig `group:"Problem"`
	RowPerm intList       `long:"row-perm" description:"Row permutation, comma separated"`
	ColPerm intList       `long:"col-perm" description:"Column permutation, comma separated"`
	Output  OutputConfig  `group:"Output"`
}

func (cmd *cmdSolve) Execute([]string) error {
	initLog(Config.Log)
	var inst = Instance{
		Name:    "cli",
		Source:  cmd.Problem.Source,
		Target:  cmd.Problem.Target,
		RowPerm: cmd.RowPerm,
		ColPerm: cmd.ColPerm,
	}
	var opts, err = cmd.Problem.options()
	if err != nil {
		return err
	}
	res, err := inst.solve(opts...)
	if err != nil {
		return err
	}
	return writeResults(os.Stdout, cmd.Output.Format, []Result{res})
}

type cmdRun struct {
	File   string       `long:"file" short:"f" required:"true" description:"YAML file of instances"`
	Output OutputConfig `group:"Output"`
}

func (cmd *cmdRun) Execute([]string) error {
	initLog(Config.Log)
	var instances, err = loadInstances(cmd.File)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": cmd.File, "instances": len(instances)}).Info("loaded instances")

	results, err := solveAll(instances)
	if err != nil {
		return err
	}
	return writeResults(os.Stdout, cmd.Output.Format, results)
}

type cmdVertices struct {
	Problem ProblemConfig `group:"Problem"`
	Max     int           `long:"max" default:"40320" description:"Maximum permutation pairs to enumerate"`
	Samples int           `long:"samples" description:"Draw this many random permutation pairs instead of enumerating"`
	Seed    int64         `long:"seed" description:"Seed for --samples (0 selects the default seed)"`
	Output  OutputConfig  `group:"Output"`
}

func (cmd *cmdVertices) Execute([]string) error {
	initLog(Config.Log)
	if cmd.Max <= 0 {
		return errors.Errorf("--max must be positive, got %d", cmd.Max)
	}
	var opts, err = cmd.Problem.options()
	if err != nil {
		return err
	}
	opts = append(opts, transport.WithMaxPermutations(cmd.Max))
	var source, target = transport.Histogram(cmd.Problem.Source), transport.Histogram(cmd.Problem.Target)

	var vertices []transport.Vertex
	if cmd.Samples > 0 {
		vertices, err = transport.Sample(context.Background(), source, target, cmd.Samples, cmd.Seed, opts...)
	} else {
		vertices, err = transport.Vertices(context.Background(), source, target, opts...)
	}
	if err != nil {
		return errors.WithMessage(err, "enumerating vertices")
	}
	log.WithField("vertices", len(vertices)).Info("enumerated distinct vertices")

	var results = make([]Result, 0, len(vertices))
	for _, v := range vertices {
		results = append(results, Result{
			Name:    "rows=" + formatPerm(v.RowPerm) + " cols=" + formatPerm(v.ColPerm),
			Plan:    v.Plan.ToSlices(),
			Support: v.Plan.Support(0),
			Vertex:  v.Plan.IsVertex(0),
		})
	}
	return writeResults(os.Stdout, cmd.Output.Format, results)
}

// solveAll solves instances in order, stopping at the first failure.
func solveAll(instances []Instance) ([]Result, error) {
	var results = make([]Result, 0, len(instances))
	for _, inst := range instances {
		var res, err = inst.solve()
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)
	parser.NamespaceDelimiter = "."
	parser.EnvNamespaceDelimiter = "_"

	_, _ = parser.AddCommand("demo", "Run the reference cases", `
Run the North-West Corner rule and its permuted variant on the reference
histograms a=[0.2,0.5,0.3], b=[0.5,0.1,0.4], plus a single-row case.
`, &cmdDemo{})

	_, _ = parser.AddCommand("solve", "Solve one problem", `
Compute the North-West Corner plan of --source and --target. When --row-perm
or --col-perm is given, the histograms are relabeled first and the plan is
mapped back to the original order.
`, &cmdSolve{})

	_, _ = parser.AddCommand("run", "Solve problems from a YAML file", `
Solve every instance of a YAML file of the form:

  instances:
    - name: example
      source: [0.2, 0.5, 0.3]
      target: [0.5, 0.1, 0.4]
      row_perm: [2, 0, 1]   # optional
      col_perm: [2, 1, 0]   # optional
      cost: [[0, 1, 2], [1, 0, 1], [2, 1, 0]]  # optional, evaluated only
      exact: true           # optional
`, &cmdRun{})

	_, _ = parser.AddCommand("vertices", "List distinct vertices over relabelings", `
Run the permuted North-West Corner rule for every pair of row and column
permutations (or --samples random pairs) and list the distinct plans.
`, &cmdVertices{})

	mustParseConfig(parser, iniFilename)
}

// mustParseConfig parses an optional INI file from the working directory,
// then environment bindings and explicit flags.
func mustParseConfig(parser *flags.Parser, configName string) {
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown

	if err := flags.NewIniParser(parser).ParseFile(configName); err != nil && !os.IsNotExist(err) {
		must(err, "parsing config file", "path", configName)
	}
	parser.Options = origOptions

	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
