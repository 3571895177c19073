// Package config loads the command line configuration.
//
// Values are layered, each source overriding the previous one:
// defaults, an optional config file (--config), QUIXO_ environment
// variables (QUIXO_MCTS_CYCLES for mcts.cycles), and the flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/IlikeChooros/go-quixo/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

const EnvPrefix = "QUIXO"

// Agent kinds
const (
	AgentMinimax = "minimax"
	AgentMCTS    = "mcts"
	AgentRandom  = "random"
)

var AgentKinds = []string{AgentMinimax, AgentMCTS, AgentRandom}

type MinimaxConfig struct {
	Depth     int  `mapstructure:"depth"`
	AlphaBeta bool `mapstructure:"alpha_beta"`
	Threads   int  `mapstructure:"threads"`
}

type MCTSConfig struct {
	Cycles       uint32 `mapstructure:"cycles"`
	Threads      int    `mapstructure:"threads"`
	RolloutPlies int    `mapstructure:"rollout_plies"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	Games    int           `mapstructure:"games"`
	Workers  int           `mapstructure:"workers"`
	Seed     int64         `mapstructure:"seed"`
	MaxPlies int           `mapstructure:"max_plies"`
	P1       string        `mapstructure:"p1"`
	P2       string        `mapstructure:"p2"`
	Show     bool          `mapstructure:"show"`
	Verbose  bool          `mapstructure:"verbose"`
	Minimax  MinimaxConfig `mapstructure:"minimax"`
	MCTS     MCTSConfig    `mapstructure:"mcts"`
	Log      LogConfig     `mapstructure:"log"`
}

// Config key, flag name, default value and usage
type option struct {
	key   string
	flag  string
	value any
	usage string
}

var options = []option{
	{"games", "games", 10, "number of games to play"},
	{"workers", "workers", 2, "number of games played in parallel"},
	{"seed", "seed", int64(0), "random seed, 0 picks one from the clock"},
	{"max_plies", "max-plies", 200, "plies after which a game is a draw, 0 for no limit"},
	{"p1", "p1", AgentMinimax, "player 1 agent: " + strings.Join(AgentKinds, ", ")},
	{"p2", "p2", AgentMCTS, "player 2 agent: " + strings.Join(AgentKinds, ", ")},
	{"show", "show", false, "play a single game and print every board"},
	{"verbose", "verbose", false, "print every move played in the arena"},
	{"minimax.depth", "minimax-depth", 3, "minimax search depth, root move included"},
	{"minimax.alpha_beta", "minimax-alpha-beta", false, "enable alpha-beta pruning"},
	{"minimax.threads", "minimax-threads", 1, "goroutines evaluating the root moves"},
	{"mcts.cycles", "mcts-cycles", uint32(100), "mcts iterations per move"},
	{"mcts.threads", "mcts-threads", 1, "parallel rollouts per mcts iteration"},
	{"mcts.rollout_plies", "mcts-rollout-plies", 500, "rollouts longer than this are a draw"},
	{"log.level", "log-level", "info", "log level: debug, info, warn, error"},
	{"log.development", "log-development", false, "human readable logs"},
}

// Register all the configuration flags, plus --config
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json, toml, ...)")
	for _, opt := range options {
		switch v := opt.value.(type) {
		case int:
			fs.Int(opt.flag, v, opt.usage)
		case int64:
			fs.Int64(opt.flag, v, opt.usage)
		case uint32:
			fs.Uint32(opt.flag, v, opt.usage)
		case bool:
			fs.Bool(opt.flag, v, opt.usage)
		case string:
			fs.String(opt.flag, v, opt.usage)
		}
	}
}

// Parse the arguments with a new flag set and load the configuration
func Parse(name string, args []string) (*Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	Flags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return Load(fs)
}

// Load the configuration, 'fs' must be parsed and contain the flags from Flags
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for _, opt := range options {
		v.SetDefault(opt.key, opt.value)
		if flag := fs.Lookup(opt.flag); flag != nil {
			if err := v.BindPFlag(opt.key, flag); err != nil {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.P1 = strings.ToLower(cfg.P1)
	cfg.P2 = strings.ToLower(cfg.P2)
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Games >= 1, "games must be positive, got %d", c.Games)
	check(c.Workers >= 1, "workers must be positive, got %d", c.Workers)
	check(c.MaxPlies >= 0, "max_plies can't be negative, got %d", c.MaxPlies)
	check(slices.Contains(AgentKinds, c.P1), "unknown p1 agent %q", c.P1)
	check(slices.Contains(AgentKinds, c.P2), "unknown p2 agent %q", c.P2)
	check(c.Minimax.Depth >= 1, "minimax.depth must be positive, got %d", c.Minimax.Depth)
	check(c.Minimax.Threads >= 1, "minimax.threads must be positive, got %d", c.Minimax.Threads)
	check(c.MCTS.Cycles >= 1, "mcts.cycles must be positive, got %d", c.MCTS.Cycles)
	check(c.MCTS.Threads >= 1, "mcts.threads must be positive, got %d", c.MCTS.Threads)
	check(c.MCTS.RolloutPlies >= 1, "mcts.rollout_plies must be positive, got %d", c.MCTS.RolloutPlies)
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
