//go:build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/frontend/telnet"
	"github.com/cory-johannsen/galacticdawn/internal/gameserver"
)

func initializeFactory(cfg config.Config, logger *zap.Logger) (*gameserver.Factory, func(), error) {
	wire.Build(gameSet)
	return nil, nil, nil
}

func initializeAcceptor(cfg config.Config, logger *zap.Logger) (*telnet.Acceptor, func(), error) {
	wire.Build(telnetSet)
	return nil, nil, nil
}
