package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/nwcorner/transport"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format string `long:"format" short:"o" default:"table" choice:"table" choice:"yaml" description:"Output format"`
}

// writeResults renders results in the configured format.
func writeResults(w io.Writer, format string, results []Result) error {
	switch format {
	case "yaml":
		var b, err = yaml.Marshal(results)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(b)
		return err
	default:
		for _, r := range results {
			if err := writeTable(w, r); err != nil {
				return errors.Wrapf(err, "rendering %s", r.Name)
			}
		}
		return nil
	}
}

// writeTable prints one result as a titled table with target bins as
// columns and source bins as rows.
func writeTable(w io.Writer, r Result) error {
	var summary = fmt.Sprintf("%s: support=%d vertex=%t", r.Name, r.Support, r.Vertex)
	if r.Cost != nil {
		summary += fmt.Sprintf(" cost=%g", *r.Cost)
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return err
	}

	var table = tablewriter.NewWriter(w)

	var headers = []string{"Source"}
	if len(r.Plan) != 0 {
		for j := range r.Plan[0] {
			headers = append(headers, "T"+strconv.Itoa(j))
		}
	}
	table.Header(headers)

	for i, row := range r.Plan {
		var cells = []string{"S" + strconv.Itoa(i)}
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'g', 6, 64))
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}

// formatPerm renders a permutation as "2,0,1".
func formatPerm(p transport.Permutation) string {
	var parts = make([]string, len(p))
	for k, v := range p {
		parts[k] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
