package netio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/aigopt/aig"
)

// Write dumps g as this package's own text format, one statement per
// line, nodes in ascending id order.
func Write(g *aig.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id := uint32(1); int(id) < g.NumNodes(); id++ {
		nd := g.Node(id)
		if nd == nil {
			continue
		}
		switch nd.Kind {
		case aig.KindInput:
			if _, err := fmt.Fprintf(bw, "input %d\n", nd.ID); err != nil {
				return err
			}
		case aig.KindAnd:
			_, err := fmt.Fprintf(bw, "and %d %d %d\n", nd.ID, uint32(nd.Fanin0), uint32(nd.Fanin1))
			if err != nil {
				return err
			}
		case aig.KindLatch:
			// Written at its own id position so that and-nodes reading
			// the latch output come after its declaration.
			for _, lt := range g.Latches() {
				if lt.NodeID != nd.ID {
					continue
				}
				_, err := fmt.Fprintf(bw, "latch %d %d %d\n", lt.NodeID, uint32(lt.Input), lt.Init)
				if err != nil {
					return err
				}
			}
		}
	}
	for _, out := range g.Outputs() {
		_, err := fmt.Fprintf(bw, "output %s %d\n", out.Name, uint32(out.Fanin))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile is Write's convenience form for the CLI's output-network flag.
func WriteFile(g *aig.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(g, f)
}

// remapEdge translates a literal written against the source graph's own
// node ids into an edge in the graph under construction.
func remapEdge(lit uint32, remap map[uint32]aig.Edge) (aig.Edge, error) {
	e := aig.Edge(lit)
	if e.IsConst() {
		return e, nil
	}
	mapped, ok := remap[e.Node()]
	if !ok {
		return 0, fmt.Errorf("netio: literal %d references an undeclared node", lit)
	}
	return mapped.WithPolarity(e.IsInverted()), nil
}

// Read parses r as this package's text format and returns the resulting
// graph. Every "and"/"latch" line must reference only nodes already
// declared earlier in the stream (the shape Write always produces).
func Read(r io.Reader) (*aig.Graph, error) {
	g := aig.New()
	remap := map[uint32]aig.Edge{0: aig.Const0}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "input":
			if len(fields) != 2 {
				return nil, fmt.Errorf("netio: line %d: malformed input statement", lineNo)
			}
			id, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			remap[uint32(id)] = g.CreateInput()
		case "and":
			if len(fields) != 4 {
				return nil, fmt.Errorf("netio: line %d: malformed and statement", lineNo)
			}
			id, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			lit0, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			lit1, err := strconv.ParseUint(fields[3], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			x, err := remapEdge(uint32(lit0), remap)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			y, err := remapEdge(uint32(lit1), remap)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			remap[uint32(id)] = g.CreateAnd(x, y)
		case "latch":
			if len(fields) != 4 {
				return nil, fmt.Errorf("netio: line %d: malformed latch statement", lineNo)
			}
			id, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			lit, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			init, err := strconv.ParseInt(fields[3], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			in, err := remapEdge(uint32(lit), remap)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			remap[uint32(id)] = g.CreateLatch(in, int8(init))
		case "output":
			if len(fields) != 3 {
				return nil, fmt.Errorf("netio: line %d: malformed output statement", lineNo)
			}
			lit, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			e, err := remapEdge(uint32(lit), remap)
			if err != nil {
				return nil, fmt.Errorf("netio: line %d: %w", lineNo, err)
			}
			g.AddOutput(fields[1], e)
		default:
			return nil, fmt.Errorf("netio: line %d: unknown statement %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFile is Read's convenience form for the CLI's input-network flag.
func ReadFile(path string) (*aig.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
