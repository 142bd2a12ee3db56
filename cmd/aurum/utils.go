// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/genesis"
	"github.com/aurumchain/aurum/lvldb"
)

func initLogger(ctx *cli.Context) {
	switch ctx.Int(verbosityFlag.Name) {
	case 0:
		logrus.SetLevel(logrus.PanicLevel)
	case 1:
		logrus.SetLevel(logrus.FatalLevel)
	case 2:
		logrus.SetLevel(logrus.ErrorLevel)
	case 3:
		logrus.SetLevel(logrus.WarnLevel)
	case 4:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func selectGenesis(ctx *cli.Context) (*genesis.Genesis, error) {
	network := ctx.String(networkFlag.Name)
	if network == "devnet" {
		return genesis.NewDevnet(), nil
	}
	data, err := os.ReadFile(network)
	if err != nil {
		return nil, errors.WithMessage(err, "read genesis config")
	}
	return genesis.NewCustomNet(data)
}

func openMainDB(ctx *cli.Context) (*lvldb.LevelDB, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		return lvldb.NewMem()
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.WithMessage(err, "create data dir")
	}
	return lvldb.New(filepath.Join(dataDir, "main.db"), lvldb.Options{})
}

func openEventDB(ctx *cli.Context) (*eventdb.EventDB, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		return eventdb.NewMem()
	}
	return eventdb.New(filepath.Join(dataDir, "events.db"))
}
