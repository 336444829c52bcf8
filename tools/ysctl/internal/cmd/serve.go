// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/ledgerservice"
	"github.com/iotexproject/iotex-yieldsplit/pkg/log"
)

// serve represents the serve command
var serve = &cobra.Command{
	Use:   "serve",
	Short: "Run the harvest scheduler and the metrics endpoint until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ls, err := ledgerservice.New(cfg, ledgerservice.WithServing())
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		if err := ls.Start(ctx); err != nil {
			return err
		}
		log.L().Info("Ledger service started.", zap.String("metrics", ls.ProbeAddr()))
		<-ctx.Done()

		log.L().Info("Shutting down ledger service.")
		return ls.Stop(context.Background())
	},
}
