package decisionlog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/aigopt/orchestrate"
)

// Write emits log's decisions to w, one integer per line in the order
// Log.Order reports (the node ids' original, pass-start order).
func Write(log *orchestrate.Log, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, id := range log.Order() {
		if _, err := fmt.Fprintln(bw, int(log.Get(id))); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile is Write's convenience form for the CLI's decision-log-file
// flag: it creates (or truncates) path and writes log to it.
func WriteFile(log *orchestrate.Log, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(log, f)
}
