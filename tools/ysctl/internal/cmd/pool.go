// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iotexproject/iotex-yieldsplit/ledgerservice"
)

// mint represents the mint command
var mint = &cobra.Command{
	Use:   "mint [asset] [owner] [amount]",
	Short: "Credit an owner with an amount of an asset",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0], args[1])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			return ls.Bank().Mint(ctx, addrs[0], addrs[1], amount)
		})
	},
}

// deposit represents the deposit command
var deposit = &cobra.Command{
	Use:   "deposit [pool] [amount]",
	Short: "Deposit into a pool as the --as address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			user, err := callerOf(ctx)
			if err != nil {
				return err
			}
			shares, err := ls.Pools().Deposit(ctx, addrs[0], user, amount)
			if err != nil {
				return err
			}
			cmd.Printf("shares: %s\n", shares)
			return nil
		})
	},
}

// withdraw represents the withdraw command
var withdraw = &cobra.Command{
	Use:   "withdraw [pool] [amount]",
	Short: "Withdraw from a pool as the --as address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			user, err := callerOf(ctx)
			if err != nil {
				return err
			}
			shares, err := ls.Pools().Withdraw(ctx, addrs[0], user, amount)
			if err != nil {
				return err
			}
			cmd.Printf("shares: %s\n", shares)
			return nil
		})
	},
}

// accrue represents the accrue command
var accrue = &cobra.Command{
	Use:   "accrue [pool] [amount]",
	Short: "Credit yield earned by a pool",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			return ls.Pools().AccrueYield(ctx, addrs[0], amount)
		})
	},
}

// harvest represents the harvest command
var harvest = &cobra.Command{
	Use:   "harvest [pool]",
	Short: "Distribute the pending yield of a pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			rec, err := ls.Pools().Harvest(ctx, addrs[0])
			if err != nil {
				return err
			}
			cmd.Printf("gross: %s fee: %s campaign: %s personal: %s\n",
				rec.Gross, rec.Fee, rec.CampaignPortion, rec.PersonalAccounted)
			return nil
		})
	},
}

// balance represents the balance command
var balance = &cobra.Command{
	Use:   "balance [asset] [owner]",
	Short: "Print the balance of an owner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0], args[1])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			bal, err := ls.Bank().Balance(ctx, addrs[0], addrs[1])
			if err != nil {
				return err
			}
			cmd.Println(bal.String())
			return nil
		})
	},
}
