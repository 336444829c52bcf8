// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/config"
	"github.com/iotexproject/iotex-yieldsplit/ledgerservice"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
	"github.com/iotexproject/iotex-yieldsplit/splitter"
)

var (
	_configPaths []string
	_caller      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ysctl [command] [flags]",
	Short: "ysctl is a command-line interface to operate a yield splitting ledger.",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.L().Fatal("failed to execute cmd", zap.Error(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&_configPaths, "config", "c", nil, "config file paths, later files override earlier ones")
	rootCmd.PersistentFlags().StringVar(&_caller, "as", "", "address the command acts as")

	rootCmd.AddCommand(registerPool)
	rootCmd.AddCommand(setFee)
	rootCmd.AddCommand(schedulerCmd)
	rootCmd.AddCommand(mint)
	rootCmd.AddCommand(deposit)
	rootCmd.AddCommand(withdraw)
	rootCmd.AddCommand(allocate)
	rootCmd.AddCommand(accrue)
	rootCmd.AddCommand(harvest)
	rootCmd.AddCommand(claim)
	rootCmd.AddCommand(pending)
	rootCmd.AddCommand(snapshot)
	rootCmd.AddCommand(balance)
	rootCmd.AddCommand(serve)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.New(_configPaths)
	if err != nil {
		return config.Config{}, err
	}
	if err := log.InitLoggers(cfg.Log, cfg.SubLogs); err != nil {
		log.L().Warn("Cannot config loggers, use default logger.", zap.Error(err))
	}
	return cfg, nil
}

// withService runs fn against a started ledger service
func withService(cmd *cobra.Command, fn func(context.Context, *ledgerservice.LedgerService) error) error {
	cmd.SilenceUsage = true
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ls, err := ledgerservice.New(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ls.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := ls.Stop(ctx); err != nil {
			log.L().Error("Failed to stop ledger service.", zap.Error(err))
		}
	}()
	if _caller != "" {
		caller, err := address.FromString(_caller)
		if err != nil {
			return errors.Wrap(err, "invalid --as address")
		}
		ctx = splitter.WithCallerCtx(ctx, splitter.CallerCtx{Caller: caller})
	}
	return fn(ctx, ls)
}

// callerOf returns the address set by --as
func callerOf(ctx context.Context) (address.Address, error) {
	cc, ok := splitter.GetCallerCtx(ctx)
	if !ok {
		return nil, errors.New("--as is required")
	}
	return cc.Caller, nil
}

func parseAddresses(args ...string) ([]address.Address, error) {
	addrs := make([]address.Address, 0, len(args))
	for _, s := range args {
		addr, err := address.FromString(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid address %s", s)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok || amount.Sign() < 0 {
		return nil, errors.Errorf("invalid amount %s", s)
	}
	return amount, nil
}
