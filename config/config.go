package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/aigopt/orchestrate"
)

// Config mirrors the flat CLI surface: one field per flag, plus the
// file paths the optimize command reads and writes. Fields line up with
// orchestrate.Config one-to-one except where noted.
type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`

	UseZerosRwr bool `mapstructure:"use_zeros_rwr"`
	UseZerosRef bool `mapstructure:"use_zeros_ref"`
	PlaceEnable bool `mapstructure:"place_enable"`

	StepsMax int `mapstructure:"steps_max"` // pass-count bound, distinct from orchestrate's n_steps
	NSteps   int `mapstructure:"n_steps"`

	CutMax      int `mapstructure:"cut_max"`       // -> orchestrate.Config.ReconvergenceCutMax
	NodeSizeMax int `mapstructure:"node_size_max"` // -> orchestrate.Config.FactorCutMax
	ConeSizeMax int `mapstructure:"cone_size_max"` // -> orchestrate.Config.ResubDivsMax

	OdcLevels   int  `mapstructure:"odc_levels"`
	UseDCs      bool `mapstructure:"use_dcs"`
	UpdateLevel bool `mapstructure:"update_level"`
	Verbose     bool `mapstructure:"verbose"`

	Policy       string `mapstructure:"policy"` // priority|greedy|per_node|random
	Order        int    `mapstructure:"order"`   // sigma in {0..5}, priority policy only
	Seed         int64  `mapstructure:"seed"`    // random policy only, -1 = time-based
	PolicyMaskFile string `mapstructure:"policy_mask_file"` // per_node policy only

	DecisionLogFile string `mapstructure:"decision_log_file"`
	GNNEdgesFile    string `mapstructure:"gnn_edges_file"`
	GNNFeaturesFile string `mapstructure:"gnn_features_file"`
	RewriteCSVFile  string `mapstructure:"rewrite_csv_file"`
	ResubCSVFile    string `mapstructure:"resub_csv_file"`
	RefactorCSVFile string `mapstructure:"refactor_csv_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("steps_max", 1)
	v.SetDefault("n_steps", 3)
	v.SetDefault("cut_max", 8)
	v.SetDefault("node_size_max", 10)
	v.SetDefault("cone_size_max", 150)
	v.SetDefault("odc_levels", 0)
	v.SetDefault("use_dcs", false)
	v.SetDefault("update_level", true)
	v.SetDefault("verbose", false)
	v.SetDefault("policy", "priority")
	v.SetDefault("order", 0)
	v.SetDefault("seed", int64(-1))
	v.SetDefault("output", "")
}

// Load reads configPath (if non-empty) as YAML, falling back to
// defaults for anything the file and the environment don't set.
// Environment variables are consulted with an AIGOPT_ prefix, e.g.
// AIGOPT_CUT_MAX overrides cut_max.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("aigopt")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// policyKind maps the flag's string spelling to orchestrate.Kind.
func policyKind(s string) (orchestrate.Kind, error) {
	switch s {
	case "priority":
		return orchestrate.KindPriority, nil
	case "greedy":
		return orchestrate.KindLocalGreedy, nil
	case "per_node":
		return orchestrate.KindPerNode, nil
	case "random":
		return orchestrate.KindRandom, nil
	default:
		return 0, fmt.Errorf("config: unknown policy %q (want priority, greedy, per_node or random)", s)
	}
}

// ToOrchestrateConfig translates the flat CLI config into the Config
// shape orchestrate.Run consumes. policyMask is the caller's already-
// parsed per-node override table (nil unless Policy == "per_node").
func (c *Config) ToOrchestrateConfig(policyMask map[uint32]int) (*orchestrate.Config, error) {
	kind, err := policyKind(c.Policy)
	if err != nil {
		return nil, err
	}
	if c.Order < 0 || c.Order >= len(orchestrate.Orders) {
		return nil, fmt.Errorf("config: order %d out of range [0,%d)", c.Order, len(orchestrate.Orders))
	}

	return &orchestrate.Config{
		UseZerosRwr:          c.UseZerosRwr,
		UseZerosRef:          c.UseZerosRef,
		PlaceEnable:          c.PlaceEnable,
		NSteps:               c.NSteps,
		ReconvergenceCutMax:  c.CutMax,
		FactorCutMax:         c.NodeSizeMax,
		ResubDivsMax:         c.ConeSizeMax,
		OdcLevels:            c.OdcLevels,
		UseDCs:               c.UseDCs,
		UpdateLevel:          c.UpdateLevel,
		Verbose:              c.Verbose,
		Policy:               kind,
		Order:                orchestrate.Orders[c.Order],
		PolicyMask:           policyMask,
		Seed:                 c.Seed,
	}, nil
}
