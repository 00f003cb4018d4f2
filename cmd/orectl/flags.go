// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to the deployment YAML config",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-9)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "write logs as JSON",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "serve prometheus metrics on this address and wait for interrupt after the command",
	}

	authorityFlag = cli.StringFlag{
		Name:  "authority",
		Usage: "staker address to derive the stake account of",
	}
	baseMintFlag = cli.StringFlag{
		Name:  "base-mint",
		Usage: "base mint to derive the lp pool of",
	}

	beneficiaryFlag = cli.StringFlag{
		Name:  "beneficiary",
		Usage: "vault beneficiary",
	}
	startFlag = cli.Int64Flag{
		Name:  "start",
		Usage: "schedule start, unix seconds",
	}
	cliffFlag = cli.Int64Flag{
		Name:  "cliff",
		Usage: "schedule cliff, unix seconds (unset for none)",
	}
	periodFlag = cli.Int64Flag{
		Name:  "period",
		Value: 86_400,
		Usage: "period length in seconds",
	}
	releaseFlag = cli.Uint64Flag{
		Name:  "release",
		Usage: "amount released per period",
	}
	countFlag = cli.Uint64Flag{
		Name:  "count",
		Usage: "number of periods",
	}
	nowFlag = cli.Int64Flag{
		Name:  "now",
		Usage: "evaluation time, unix seconds (default: current time)",
	}
	claimedFlag = cli.Uint64Flag{
		Name:  "claimed",
		Usage: "amount already claimed",
	}

	amountFlag = cli.Uint64Flag{
		Name:  "amount",
		Usage: "requested amount",
	}
	balanceFlag = cli.Uint64Flag{
		Name:  "balance",
		Usage: "sender balance",
	}
	stakeBpsFlag = cli.Uint64Flag{
		Name:  "stake-bps",
		Usage: "share of buried tokens given to stakers, in basis points (default: config)",
	}
	totalStakedFlag = cli.Uint64Flag{
		Name:  "total-staked",
		Usage: "total staked",
	}
	totalFlag = cli.Uint64Flag{
		Name:  "total",
		Usage: "round reward to split",
	}
	motherlodeBpsFlag = cli.Uint64Flag{
		Name:  "motherlode-bps",
		Usage: "motherlode share in basis points (default: config)",
	}

	fundFlag = cli.Uint64Flag{
		Name:  "fund",
		Usage: "lamports to airdrop to the payer on the local ledger before launching",
	}
	memFlag = cli.BoolFlag{
		Name:  "mem",
		Usage: "run against an in-memory ledger instead of the data dir",
	}
)
