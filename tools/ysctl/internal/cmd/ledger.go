// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"strconv"

	"github.com/iotexproject/iotex-address/address"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/iotexproject/iotex-yieldsplit/ledgerservice"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

// allocate represents the allocate command
var allocate = &cobra.Command{
	Use:   "allocate [pool] [tier] [beneficiary]",
	Short: "Choose the campaign tier (50, 75 or 100) and the beneficiary of the --as address",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		tier, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return err
		}
		var beneficiary address.Address
		if len(args) == 3 {
			b, err := parseAddresses(args[2])
			if err != nil {
				return err
			}
			beneficiary = b[0]
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			return ls.Engine().SetAllocation(ctx, addrs[0], splitter.Tier(tier), beneficiary)
		})
	},
}

// claim represents the claim command
var claim = &cobra.Command{
	Use:   "claim [pool]",
	Short: "Claim the personal yield of the --as address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			rec, err := ls.Engine().Claim(ctx, addrs[0])
			if err != nil {
				return err
			}
			cmd.Printf("claimed %s to %s\n", rec.Amount, rec.Beneficiary)
			return nil
		})
	},
}

// pending represents the pending command
var pending = &cobra.Command{
	Use:   "pending [pool] [user]",
	Short: "Print the claimable personal yield of a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0], args[1])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			amount, err := ls.Engine().PendingPersonal(ctx, addrs[1], addrs[0])
			if err != nil {
				return err
			}
			cmd.Println(amount.String())
			return nil
		})
	},
}

// snapshot represents the snapshot command
var snapshot = &cobra.Command{
	Use:   "snapshot [pool]",
	Short: "Print the aggregate state of a pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args[0])
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, ls *ledgerservice.LedgerService) error {
			s, err := ls.Engine().Snapshot(ctx, addrs[0])
			if err != nil {
				return err
			}
			tb := table.New("Field", "Value").WithWriter(cmd.OutOrStdout())
			tb.AddRow("pool", s.Pool)
			tb.AddRow("asset", s.Asset)
			tb.AddRow("campaign", s.CampaignID)
			tb.AddRow("totalShares", s.TotalShares)
			for _, tier := range []splitter.Tier{splitter.Tier50, splitter.Tier75, splitter.Tier100} {
				tb.AddRow("shares["+tier.String()+"]", s.BucketShares[tier])
				if acc, ok := s.AccPerShare[tier]; ok {
					tb.AddRow("accPerShare["+tier.String()+"]", acc)
				}
			}
			tb.AddRow("fees", s.TotalFees)
			tb.AddRow("toCampaign", s.TotalCampaign)
			tb.AddRow("personal", s.TotalPersonal)
			tb.AddRow("claimed", s.TotalClaimed)
			tb.AddRow("distributions", s.Distributions)
			tb.Print()
			return nil
		})
	},
}
