// Package report renders and serializes solver metrics records: the
// reporting boundary of the system. It accepts a finished attempt's metrics
// plus an optional action sequence and turns them into JSON records or a
// plain-text table; orchestrating experiments and drawing charts are the
// consumer's business.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/velzan/sokosearch/astar"
	"github.com/velzan/sokosearch/satplan"
	"github.com/velzan/sokosearch/sokoban"
)

// Solver labels used in Record.Solver.
const (
	SolverAStar   = "astar"
	SolverSATPlan = "satplan"
)

// Record is one attempt's flat, serialization-ready summary. Fields that
// only one solver family produces are omitted from JSON when zero.
type Record struct {
	Level     string `json:"level"`
	Solver    string `json:"solver"`
	Heuristic string `json:"heuristic,omitempty"`
	// ScalingParam is the instance size driver: the number of boxes.
	ScalingParam int `json:"scaling_param"`

	NodesExpanded      int     `json:"nodes_expanded,omitempty"`
	NodesGenerated     int     `json:"nodes_generated,omitempty"`
	MaxFrontierSize    int     `json:"max_frontier_size,omitempty"`
	MaxMemoryNodes     int     `json:"max_memory_nodes,omitempty"`
	AvgBranchingFactor float64 `json:"avg_branching_factor,omitempty"`

	NumVariables int     `json:"num_variables,omitempty"`
	EncodingTime float64 `json:"encoding_time,omitempty"`
	SolvingTime  float64 `json:"solving_time,omitempty"`

	TotalTime      float64 `json:"total_time"`
	SolutionLength int     `json:"solution_length"`
	Success        bool    `json:"success"`
	Timeout        bool    `json:"timeout"`
	Moves          string  `json:"moves"`
}

// Moves renders an action sequence as comma-joined single-letter codes,
// e.g. "U,R,R,D". A nil or empty sequence renders as the empty string.
func Moves(actions []sokoban.Direction) string {
	if len(actions) == 0 {
		return ""
	}
	letters := make([]string, len(actions))
	for i, a := range actions {
		letters[i] = string(a.Letter())
	}

	return strings.Join(letters, ",")
}

// NewSearchRecord summarizes one astar attempt on p under the named
// heuristic.
func NewSearchRecord(level, heuristic string, p *sokoban.Problem, res *astar.Result[sokoban.State, sokoban.Direction]) Record {
	m := res.Metrics

	return Record{
		Level:              level,
		Solver:             SolverAStar,
		Heuristic:          heuristic,
		ScalingParam:       p.InitialState().Boxes.Len(),
		NodesExpanded:      m.NodesExpanded,
		NodesGenerated:     m.NodesGenerated,
		MaxFrontierSize:    m.MaxFrontierSize,
		MaxMemoryNodes:     m.MaxMemoryNodes,
		AvgBranchingFactor: m.AvgBranchingFactor,
		TotalTime:          m.TotalTime.Seconds(),
		SolutionLength:     m.SolutionLength,
		Success:            m.Success,
		Timeout:            m.Timeout,
		Moves:              Moves(res.Actions),
	}
}

// NewPlanRecord summarizes one satplan attempt on p.
func NewPlanRecord(level string, p *sokoban.Problem, res *satplan.Result) Record {
	m := res.Metrics

	return Record{
		Level:          level,
		Solver:         SolverSATPlan,
		ScalingParam:   p.InitialState().Boxes.Len(),
		NumVariables:   m.NumVariables,
		EncodingTime:   m.EncodingTime.Seconds(),
		SolvingTime:    m.SolvingTime.Seconds(),
		TotalTime:      m.TotalTime.Seconds(),
		SolutionLength: m.SolutionLength,
		Success:        m.Success,
		Timeout:        m.Timeout,
		Moves:          Moves(res.Actions),
	}
}

// WriteJSON serializes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("report: encoding records: %w", err)
	}

	return nil
}

// ReadJSON parses a JSON array previously produced by WriteJSON.
func ReadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("report: decoding records: %w", err)
	}

	return records, nil
}

// WriteTable renders records as an aligned plain-text table, one attempt
// per row.
func WriteTable(w io.Writer, records []Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tSOLVER\tHEURISTIC\tOK\tTIMEOUT\tLEN\tEXPANDED\tTIME(S)")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%d\t%d\t%.3f\n",
			rec.Level, rec.Solver, rec.Heuristic,
			rec.Success, rec.Timeout,
			rec.SolutionLength, rec.NodesExpanded, rec.TotalTime,
		)
	}

	return tw.Flush()
}
