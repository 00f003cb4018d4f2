// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "orectl",
		Usage:   "Inspect and simulate the ore protocol",
		Flags: []cli.Flag{
			configFlag,
			verbosityFlag,
			jsonLogsFlag,
			metricsAddrFlag,
		},
		Before: before,
		Commands: []cli.Command{
			{
				Name:   "derive",
				Usage:  "print the derived accounts of the deployment",
				Flags:  []cli.Flag{authorityFlag, baseMintFlag},
				Action: deriveAction,
			},
			{
				Name:   "vesting",
				Usage:  "evaluate a vesting schedule and derive its vault",
				Flags:  []cli.Flag{beneficiaryFlag, startFlag, cliffFlag, periodFlag, releaseFlag, countFlag, nowFlag, claimedFlag},
				Action: vestingAction,
			},
			{
				Name:   "bury",
				Usage:  "preview how a bury is split between stakers and the burn",
				Flags:  []cli.Flag{amountFlag, balanceFlag, stakeBpsFlag, totalStakedFlag},
				Action: buryAction,
			},
			{
				Name:   "split",
				Usage:  "preview how a round reward is split",
				Flags:  []cli.Flag{totalFlag, motherlodeBpsFlag},
				Action: splitAction,
			},
			{
				Name:   "launch",
				Usage:  "open the configured lp pool and vesting vaults and print their addresses",
				Flags:  []cli.Flag{fundFlag, memFlag},
				Action: launchAction,
			},
			{
				Name:   "simulate",
				Usage:  "run a deployment end to end against a local ledger and print its events",
				Flags:  []cli.Flag{memFlag},
				Action: simulateAction,
			},
		},
		After: after,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
