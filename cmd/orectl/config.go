// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/oreprotocol/ore/ore"
	"github.com/oreprotocol/ore/schedule"
)

// Key is a public key written in base58.
type Key solana.PublicKey

func (k Key) PublicKey() solana.PublicKey {
	return solana.PublicKey(k)
}

func (k Key) String() string {
	return base58.Encode(k[:])
}

func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := parseKey(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*k = Key(parsed)
	return nil
}

func parseKey(s string) (solana.PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "decode key %q", s)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, errors.Errorf("key %q is %d bytes, want %d", s, len(raw), solana.PublicKeyLength)
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// Config describes one deployment.
type Config struct {
	OreProgram         Key    `yaml:"ore_program"`
	RewardsLockProgram Key    `yaml:"rewards_lock_program"`
	Mint               Key    `yaml:"mint"`
	Admin              Key    `yaml:"admin"`
	Payer              Key    `yaml:"payer"`
	RewardPerRound     uint64 `yaml:"reward_per_round"`
	MaxSupply          uint64 `yaml:"max_supply"`
	MotherlodeBps      uint64 `yaml:"motherlode_bps"`
	StakeBps           uint64 `yaml:"stake_bps"`
	DataDir            string `yaml:"data_dir"`

	LpPool *LpPoolConfig `yaml:"lp_pool,omitempty"`
	Vaults []VaultConfig `yaml:"vaults,omitempty"`
}

// LpPoolConfig is the pool opened at launch. The base mint defaults to the
// deployment mint.
type LpPoolConfig struct {
	BaseMint  *Key `yaml:"base_mint,omitempty"`
	QuoteMint Key  `yaml:"quote_mint"`
}

// VaultConfig is a vesting vault opened at launch.
type VaultConfig struct {
	Label       string         `yaml:"label,omitempty"`
	Beneficiary Key            `yaml:"beneficiary"`
	Schedule    ScheduleConfig `yaml:"schedule"`
}

type ScheduleConfig struct {
	StartTs          int64  `yaml:"start_ts"`
	CliffTs          *int64 `yaml:"cliff_ts,omitempty"`
	PeriodSeconds    int64  `yaml:"period_seconds"`
	ReleasePerPeriod uint64 `yaml:"release_per_period"`
	PeriodCount      uint64 `yaml:"period_count"`
}

func (s ScheduleConfig) Schedule() schedule.Schedule {
	out := schedule.Schedule{
		Start:            s.StartTs,
		PeriodSeconds:    s.PeriodSeconds,
		ReleasePerPeriod: s.ReleasePerPeriod,
		PeriodCount:      s.PeriodCount,
	}
	if s.CliffTs != nil {
		out.HasCliff, out.Cliff = true, *s.CliffTs
	}
	return out
}

// DefaultConfig is a development deployment.
func DefaultConfig() *Config {
	return &Config{
		OreProgram:         Key(solana.MustPublicKeyFromBase58("oreV3EG1i9BEgiAJ8b177Z2S2rMarzak4NMv1kULvWv")),
		RewardsLockProgram: Key(solana.MustPublicKeyFromBase58("LocKUXXmG4ft6tdSqXAvcXsBFoiiR6iHkhe6s4y3qpc")),
		RewardPerRound:     ore.ONE,
		MaxSupply:          5_000_000 * ore.ONE,
		MotherlodeBps:      1_000,
		StakeBps:           1_000,
		DataDir:            defaultDataDir(),
	}
}

// LoadConfig reads a YAML config over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MotherlodeBps > ore.DenominatorBPS {
		return errors.Errorf("motherlode_bps %d above %d", c.MotherlodeBps, ore.DenominatorBPS)
	}
	if c.StakeBps > ore.DenominatorBPS {
		return errors.Errorf("stake_bps %d above %d", c.StakeBps, ore.DenominatorBPS)
	}
	if c.OreProgram == (Key{}) || c.RewardsLockProgram == (Key{}) {
		return errors.New("program ids are required")
	}
	if c.LpPool != nil && c.LpPool.QuoteMint == (Key{}) {
		return errors.New("lp_pool.quote_mint is required")
	}
	for i, v := range c.Vaults {
		switch {
		case v.Beneficiary == (Key{}):
			return errors.Errorf("vaults[%d]: beneficiary is required", i)
		case v.Schedule.PeriodSeconds <= 0:
			return errors.Errorf("vaults[%d]: period_seconds must be positive", i)
		case v.Schedule.PeriodCount == 0:
			return errors.Errorf("vaults[%d]: period_count must be greater than zero", i)
		}
	}
	return nil
}
