// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package log

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// GlobalConfig defines the global logger configurations.
type GlobalConfig struct {
	Zap *zap.Config `json:"zap" yaml:"zap"`
}

var (
	_logMu            sync.RWMutex
	_subLoggers       map[string]*zap.Logger
	_globalLoggerName = "global"
)

func init() {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level.SetLevel(zap.InfoLevel)
	l, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	_subLoggers = make(map[string]*zap.Logger)
}

// L wraps zap.L().
func L() *zap.Logger { return zap.L() }

// S wraps zap.S().
func S() *zap.SugaredLogger { return zap.S() }

// Logger returns the logger of the given name, or the global one if no such sub logger exists
func Logger(name string) *zap.Logger {
	_logMu.RLock()
	defer _logMu.RUnlock()
	if l, ok := _subLoggers[name]; ok {
		return l
	}
	return L().Named(name)
}

// InitLoggers initializes the global logger and other sub loggers.
func InitLoggers(globalCfg GlobalConfig, subCfgs map[string]GlobalConfig, opts ...zap.Option) error {
	if _, exists := subCfgs[_globalLoggerName]; exists {
		return errors.New("'" + _globalLoggerName + "' is a reserved name for global logger")
	}
	cfgs := make(map[string]GlobalConfig, len(subCfgs)+1)
	for name, cfg := range subCfgs {
		cfgs[name] = cfg
	}
	cfgs[_globalLoggerName] = globalCfg

	_logMu.Lock()
	defer _logMu.Unlock()
	for name, cfg := range cfgs {
		if _, exists := _subLoggers[name]; exists {
			return errors.Errorf("duplicate sub logger name: %s", name)
		}
		if cfg.Zap == nil {
			zapCfg := zap.NewProductionConfig()
			cfg.Zap = &zapCfg
		}
		logger, err := cfg.Zap.Build(opts...)
		if err != nil {
			return errors.Wrapf(err, "failed to build logger %s", name)
		}
		if name == _globalLoggerName {
			zap.ReplaceGlobals(logger)
			continue
		}
		_subLoggers[name] = logger.Named(name)
	}
	return nil
}
