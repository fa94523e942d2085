// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	logging "github.com/ipfs/go-log"
)

// Logger is shared by every package in this module for progress and error reporting during
// long-running operations (safe prime search, Paillier key generation, proof verification
// failures). Set the level with SetLogLevel, e.g. from an application's main package:
//
//	common.SetLogLevel("debug")
var Logger = logging.Logger("zkrange")

// SetLogLevel adjusts the verbosity of Logger. Valid levels are the same ones accepted by
// github.com/ipfs/go-log: "debug", "info", "warn", "error", "dpanic", "panic", "fatal".
func SetLogLevel(level string) error {
	return logging.SetLogLevel("zkrange", level)
}
