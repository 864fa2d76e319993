package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cliquer/pkg/analysis"
	"github.com/matzehuels/cliquer/pkg/graph"
)

// graphStats summarizes a graph's size and degree distribution.
type graphStats struct {
	Nodes     int         `json:"nodes"`
	Edges     int         `json:"edges"`
	Density   float64     `json:"density"`
	MinDegree int         `json:"min_degree"`
	MaxDegree int         `json:"max_degree"`
	AvgDegree float64     `json:"avg_degree"`
	Histogram map[int]int `json:"degree_histogram"`
}

func computeStats(g *graph.Graph) graphStats {
	s := graphStats{
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Histogram: make(map[int]int),
	}
	if s.Nodes == 0 {
		return s
	}

	s.MinDegree = -1
	for _, n := range g.Nodes() {
		d := g.Degree(n)
		s.Histogram[d]++
		if s.MinDegree < 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		s.MaxDegree = max(s.MaxDegree, d)
	}
	s.AvgDegree = float64(2*s.Edges) / float64(s.Nodes)
	if s.Nodes > 1 {
		s.Density = float64(2*s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}
	return s
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <file|->",
		Short: "Summarize node, edge and degree statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, analysis.NewRunner(nil, nil, c.Logger), args[0])
			if err != nil {
				return err
			}
			s := computeStats(g)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, s)
			}

			fmt.Fprintln(out, StyleTitle.Render("Graph"))
			printKeyValue(out, "nodes", StyleNumber.Render(strconv.Itoa(s.Nodes)))
			printKeyValue(out, "edges", StyleNumber.Render(strconv.Itoa(s.Edges)))
			printKeyValue(out, "density", fmt.Sprintf("%.4f", s.Density))
			printKeyValue(out, "degree", fmt.Sprintf("min %d · avg %.2f · max %d", s.MinDegree, s.AvgDegree, s.MaxDegree))
			if s.Nodes == 0 {
				return nil
			}

			degrees := slices.Sorted(maps.Keys(s.Histogram))
			counts := make([]int, len(degrees))
			for i, d := range degrees {
				counts[i] = s.Histogram[d]
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderDegreeTable(degrees, counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the statistics as JSON")

	return cmd
}
