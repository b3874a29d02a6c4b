package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/config"
	"github.com/katalvlaran/aigopt/orchestrate"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 1, cfg.StepsMax)
	require.Equal(t, 3, cfg.NSteps)
	require.Equal(t, 8, cfg.CutMax)
	require.Equal(t, 10, cfg.NodeSizeMax)
	require.Equal(t, 150, cfg.ConeSizeMax)
	require.Equal(t, "priority", cfg.Policy)
	require.Equal(t, int64(-1), cfg.Seed)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aigopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cut_max: 6\nuse_dcs: true\npolicy: greedy\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.CutMax)
	require.True(t, cfg.UseDCs)
	require.Equal(t, "greedy", cfg.Policy)
	require.Equal(t, 150, cfg.ConeSizeMax, "unset keys keep their default")
}

func TestToOrchestrateConfig_MapsFlatFieldsOntoOrchestrateNames(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.CutMax = 6
	cfg.NodeSizeMax = 12
	cfg.ConeSizeMax = 200

	oc, err := cfg.ToOrchestrateConfig(nil)
	require.NoError(t, err)
	require.Equal(t, 6, oc.ReconvergenceCutMax)
	require.Equal(t, 12, oc.FactorCutMax)
	require.Equal(t, 200, oc.ResubDivsMax)
	require.Equal(t, orchestrate.KindPriority, oc.Policy)
	require.Equal(t, orchestrate.Orders[0], oc.Order)
}

func TestToOrchestrateConfig_RejectsUnknownPolicy(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Policy = "bogus"
	_, err = cfg.ToOrchestrateConfig(nil)
	require.Error(t, err)
}

func TestToOrchestrateConfig_RejectsOrderOutOfRange(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Order = 6
	_, err = cfg.ToOrchestrateConfig(nil)
	require.Error(t, err)
}
