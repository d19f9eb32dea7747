package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mddbb/minla"
)

// readEdgeList parses a trivial weighted edge-list file for the minla
// problem family: a first line giving the vertex count, followed by one
// "u v w" line per edge. Blank lines and lines starting with '#' are
// skipped. This is not a general instance format — just enough to let
// the CLI point at a file instead of a bundled example.
func readEdgeList(path string) (*minla.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	defer f.Close()

	var n int
	var weights [][]float64
	haveN := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !haveN {
			n, err = strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("read edge list: vertex count: %w", err)
			}
			weights = make([][]float64, n)
			for i := range weights {
				weights[i] = make([]float64, n)
			}
			haveN = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("read edge list: want \"u v w\", got %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("read edge list: u: %w", err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("read edge list: v: %w", err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("read edge list: w: %w", err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("read edge list: vertex out of range in %q", line)
		}
		weights[u][v] = w
		weights[v][u] = w
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	if !haveN {
		return nil, fmt.Errorf("read edge list: empty file")
	}

	return minla.New(weights)
}
