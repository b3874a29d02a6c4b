package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aigopt/config"
	"github.com/katalvlaran/aigopt/decisionlog"
	"github.com/katalvlaran/aigopt/gnnexport"
	"github.com/katalvlaran/aigopt/netio"
	"github.com/katalvlaran/aigopt/netupdate"
	"github.com/katalvlaran/aigopt/orchestrate"
)

// Process exit codes. The orchestration core's own success/failure
// vocabulary (1 = success, 0 = invariant violation, -1 = unrecoverable
// update failure) doesn't fit the OS convention that 0 means success,
// so the command line maps it onto ordinary Unix exit codes instead:
// 0 for success, 1 for an invariant violation, 2 for an update failure
// the core could not recover from.
const (
	exitInvariantViolated = 1
	exitUpdateFailure     = 2
)

// exitCodeErr lets Execute pick a specific process exit code for an
// error RunE returns, instead of the cobra default of 1 for any error.
type exitCodeErr struct {
	code int
	err  error
}

func (e *exitCodeErr) Error() string { return e.err.Error() }
func (e *exitCodeErr) Unwrap() error { return e.err }

var optFlags = struct {
	input  string
	output string

	useZerosRwr bool
	useZerosRef bool
	placeEnable bool

	stepsMax    int
	nSteps      int
	cutMax      int
	nodeSizeMax int
	coneSizeMax int

	odcLevels   int
	useDCs      bool
	updateLevel bool

	policy         string
	order          int
	seed           int64
	policyMaskFile string

	decisionLogFile string
	gnnEdgesFile    string
	gnnFeaturesFile string
	rewriteCSVFile  string
	resubCSVFile    string
	refactorCSVFile string
}{}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run optimization passes over a network and write the result back out",
	RunE:  runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	f := optimizeCmd.Flags()
	f.StringVarP(&optFlags.input, "input", "i", "", "input network file (required)")
	f.StringVarP(&optFlags.output, "output", "o", "", "output network file; omit to skip writing one")
	optimizeCmd.MarkFlagRequired("input")

	f.BoolVar(&optFlags.useZerosRwr, "use-zeros-rwr", false, "accept zero-gain rewrite proposals")
	f.BoolVar(&optFlags.useZerosRef, "use-zeros-ref", false, "accept zero-gain refactor proposals")
	f.BoolVar(&optFlags.placeEnable, "place-enable", false, "accepted for CLI-surface parity; has no effect")

	f.IntVar(&optFlags.stepsMax, "steps-max", 0, "number of orchestrator passes to run (0 = use config default)")
	f.IntVar(&optFlags.nSteps, "n-steps", 0, "resub search escalation bound, 0-3 (0 = use config default)")
	f.IntVar(&optFlags.cutMax, "cut-max", 0, "resub reconvergence cut leaf bound (0 = use config default)")
	f.IntVar(&optFlags.nodeSizeMax, "node-size-max", 0, "refactor factor-cut leaf bound (0 = use config default)")
	f.IntVar(&optFlags.coneSizeMax, "cone-size-max", 0, "resub divisor-set budget (0 = use config default)")

	f.IntVar(&optFlags.odcLevels, "odc-levels", 0, "observability don't-care search depth")
	f.BoolVar(&optFlags.useDCs, "use-dcs", false, "narrow the care set with the configured don't-care oracle")
	f.BoolVar(&optFlags.updateLevel, "update-level", true, "rebuild node levels after each pass")
	optimizeCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-pass summaries")

	f.StringVar(&optFlags.policy, "policy", "", "winner-selection policy: priority, greedy, per_node or random")
	f.IntVar(&optFlags.order, "order", -1, "priority order sigma in [0,6) (priority policy only)")
	f.Int64Var(&optFlags.seed, "seed", 0, "PRNG seed, -1 = time-based (random policy only)")
	f.StringVar(&optFlags.policyMaskFile, "policy-mask", "", "per-node order-index override file (per_node policy only)")

	f.StringVar(&optFlags.decisionLogFile, "decision-log", "", "write the per-node decision log here")
	f.StringVar(&optFlags.gnnEdgesFile, "gnn-edges", "", "write the GNN-export edge list here")
	f.StringVar(&optFlags.gnnFeaturesFile, "gnn-features", "", "write the GNN-export feature table here")
	f.StringVar(&optFlags.rewriteCSVFile, "rewrite-csv", "", "write rewrite's per-node {id, gain} log here")
	f.StringVar(&optFlags.resubCSVFile, "resub-csv", "", "write resub's per-node {id, gain} log here")
	f.StringVar(&optFlags.refactorCSVFile, "refactor-csv", "", "write refactor's per-node {id, gain} log here")
}

var verbose bool

func parsePolicyMask(path string) (map[uint32]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mask := make(map[uint32]int)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("policy mask: malformed line %q", line)
		}
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("policy mask: %w", err)
		}
		order, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("policy mask: %w", err)
		}
		mask[uint32(id)] = order
	}
	return mask, scanner.Err()
}

func writeTransformCSV(path string, stats map[uint32]orchestrate.NodeStats, okOf func(orchestrate.NodeStats) bool, gainOf func(orchestrate.NodeStats) int) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	for id, st := range stats {
		if !okOf(st) {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d, %d\n", id, gainOf(st)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// newLogger returns a slog.Logger writing to stderr, at Info level when
// verbose output was requested and Warn level otherwise (fatal diagnostics
// still surface; routine per-pass detail does not).
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg.Input = optFlags.input
	cfg.Output = optFlags.output
	for flag, p := range map[string][2]*bool{
		"use-zeros-rwr": {&optFlags.useZerosRwr, &cfg.UseZerosRwr},
		"use-zeros-ref": {&optFlags.useZerosRef, &cfg.UseZerosRef},
		"place-enable":  {&optFlags.placeEnable, &cfg.PlaceEnable},
		"use-dcs":       {&optFlags.useDCs, &cfg.UseDCs},
		"verbose":       {&verbose, &cfg.Verbose},
	} {
		if cmd.Flags().Changed(flag) {
			*p[1] = *p[0]
		}
	}
	if cmd.Flags().Changed("steps-max") {
		cfg.StepsMax = optFlags.stepsMax
	}
	if cmd.Flags().Changed("n-steps") {
		cfg.NSteps = optFlags.nSteps
	}
	if cmd.Flags().Changed("cut-max") {
		cfg.CutMax = optFlags.cutMax
	}
	if cmd.Flags().Changed("node-size-max") {
		cfg.NodeSizeMax = optFlags.nodeSizeMax
	}
	if cmd.Flags().Changed("cone-size-max") {
		cfg.ConeSizeMax = optFlags.coneSizeMax
	}
	if cmd.Flags().Changed("odc-levels") {
		cfg.OdcLevels = optFlags.odcLevels
	}
	if cmd.Flags().Changed("update-level") {
		cfg.UpdateLevel = optFlags.updateLevel
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = optFlags.policy
	}
	if cmd.Flags().Changed("order") {
		cfg.Order = optFlags.order
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = optFlags.seed
	}
	if cmd.Flags().Changed("policy-mask") {
		cfg.PolicyMaskFile = optFlags.policyMaskFile
	}
	for flag, p := range map[string][2]*string{
		"decision-log": {&optFlags.decisionLogFile, &cfg.DecisionLogFile},
		"gnn-edges":    {&optFlags.gnnEdgesFile, &cfg.GNNEdgesFile},
		"gnn-features": {&optFlags.gnnFeaturesFile, &cfg.GNNFeaturesFile},
		"rewrite-csv":  {&optFlags.rewriteCSVFile, &cfg.RewriteCSVFile},
		"resub-csv":    {&optFlags.resubCSVFile, &cfg.ResubCSVFile},
		"refactor-csv": {&optFlags.refactorCSVFile, &cfg.RefactorCSVFile},
	} {
		if cmd.Flags().Changed(flag) {
			*p[1] = *p[0]
		}
	}

	var policyMask map[uint32]int
	if cfg.Policy == "per_node" && cfg.PolicyMaskFile != "" {
		policyMask, err = parsePolicyMask(cfg.PolicyMaskFile)
		if err != nil {
			return err
		}
	}

	oc, err := cfg.ToOrchestrateConfig(policyMask)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	g, err := netio.ReadFile(cfg.Input)
	if err != nil {
		logger.Error("failed to read input network", "input", cfg.Input, "error", err)
		return err
	}

	if g.NumLiveAndNodes() == 0 {
		logger.Info("empty network, nothing to do", "input", cfg.Input)
		if cfg.Verbose {
			fmt.Fprintln(cmd.OutOrStdout(), "empty network, nothing to do")
		}
		if cfg.Output != "" {
			return netio.WriteFile(g, cfg.Output)
		}
		return nil
	}

	stepsMax := cfg.StepsMax
	if stepsMax <= 0 {
		stepsMax = 1
	}

	var last *orchestrate.Result
	for step := 0; step < stepsMax; step++ {
		res, runErr := orchestrate.Run(g, oc)
		if runErr != nil {
			if errors.Is(runErr, netupdate.ErrGainMismatch) {
				logger.Error("update failure, aborting pass", "pass", step, "error", runErr)
				return &exitCodeErr{code: exitUpdateFailure, err: runErr}
			}
			logger.Error("invariant violation after pass", "pass", step, "error", runErr)
			return &exitCodeErr{code: exitInvariantViolated, err: runErr}
		}
		last = res
		logger.Info("pass complete",
			"pass", step, "rewrite", res.Applied.Rewrite, "resub", res.Applied.Resub,
			"refactor", res.Applied.Refactor, "nodes_before", res.NodeCountBefore, "nodes_after", res.NodeCountAfter)
		if cfg.Verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "pass %d: rewrite=%d resub=%d refactor=%d nodes %d -> %d\n",
				step, res.Applied.Rewrite, res.Applied.Resub, res.Applied.Refactor,
				res.NodeCountBefore, res.NodeCountAfter)
		}
		if res.Applied.Rewrite == 0 && res.Applied.Resub == 0 && res.Applied.Refactor == 0 {
			break
		}
	}

	if cfg.Output != "" {
		if err := netio.WriteFile(g, cfg.Output); err != nil {
			return err
		}
	}
	if cfg.DecisionLogFile != "" {
		if err := decisionlog.WriteFile(last.Log, cfg.DecisionLogFile); err != nil {
			return err
		}
	}
	if cfg.GNNEdgesFile != "" {
		if err := gnnexport.WriteEdgeListFile(g, cfg.GNNEdgesFile); err != nil {
			return err
		}
	}
	if cfg.GNNFeaturesFile != "" {
		if err := gnnexport.WriteFeaturesFile(g, last.Stats, cfg.GNNFeaturesFile); err != nil {
			return err
		}
	}
	if err := writeTransformCSV(cfg.RewriteCSVFile, last.Stats,
		func(s orchestrate.NodeStats) bool { return s.RewriteOK },
		func(s orchestrate.NodeStats) int { return s.RewriteGain }); err != nil {
		return err
	}
	if err := writeTransformCSV(cfg.ResubCSVFile, last.Stats,
		func(s orchestrate.NodeStats) bool { return s.ResubOK },
		func(s orchestrate.NodeStats) int { return s.ResubGain }); err != nil {
		return err
	}
	if err := writeTransformCSV(cfg.RefactorCSVFile, last.Stats,
		func(s orchestrate.NodeStats) bool { return s.RefactorOK },
		func(s orchestrate.NodeStats) int { return s.RefactorGain }); err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "final node count: %d\n", g.NumLiveAndNodes())
	}
	return nil
}
