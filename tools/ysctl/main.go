// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// ysctl operates a yield ledger kept in a local store.
package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/iotexproject/iotex-yieldsplit/tools/ysctl/internal/cmd"
)

func main() {
	cmd.Execute()
}
