// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iotexproject/iotex-yieldsplit/ledgerservice"
)

// registerPool represents the register-pool command
var registerPool = &cobra.Command{
	Use:   "register-pool [pool] [asset] [campaignID]",
	Short: "Register a pool with its asset and campaign",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0], args[1])
		if err != nil {
			return err
		}
		campaignID, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			if err := ls.Engine().RegisterPool(ctx, addrs[0], addrs[1], campaignID); err != nil {
				return err
			}
			cmd.Printf("registered pool %s for campaign %d\n", addrs[0], campaignID)
			return nil
		})
	},
}

// setFee represents the set-fee command
var setFee = &cobra.Command{
	Use:   "set-fee [bps]",
	Short: "Set the protocol fee rate in basis points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bps, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			if err := ls.Engine().SetFeeRate(ctx, bps); err != nil {
				return err
			}
			cmd.Printf("fee rate set to %d bps\n", bps)
			return nil
		})
	},
}

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the distribution scheduler allow-list",
}

var schedulerAdd = &cobra.Command{
	Use:   "add [address]",
	Short: "Allow an address to trigger distributions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			return ls.Engine().AddScheduler(ctx, addrs[0])
		})
	},
}

var schedulerRemove = &cobra.Command{
	Use:   "remove [address]",
	Short: "Remove an address from the allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			return ls.Engine().RemoveScheduler(ctx, addrs[0])
		})
	},
}

var schedulerList = &cobra.Command{
	Use:   "list",
	Short: "List the allow-listed schedulers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			schedulers, err := ls.Engine().Schedulers(ctx)
			if err != nil {
				return err
			}
			for _, s := range schedulers {
				cmd.Println(s.String())
			}
			return nil
		})
	},
}

func init() {
	schedulerCmd.AddCommand(schedulerAdd)
	schedulerCmd.AddCommand(schedulerRemove)
	schedulerCmd.AddCommand(schedulerList)
}
