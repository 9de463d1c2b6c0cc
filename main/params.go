// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"flag"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	versionKey    = "version"
	dataDirKey    = "data-dir"
	listenAddrKey = "listen-addr"
)

// Config holds the server's command line configuration.
type Config struct {
	PrintVersion bool
	DataDir      string
	ListenAddr   string
}

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("journalkv", flag.ContinueOnError)

	fs.Bool(versionKey, false, "If true, prints version and quits")
	fs.String(dataDirKey, "", "Directory for the LevelDB backing store; empty selects an in-memory store")
	fs.String(listenAddrKey, ":8545", "Address the JSON-RPC server listens on")

	return fs
}

// getViper returns the viper environment for the server binary
func getViper() (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	pflag.CommandLine.AddGoFlagSet(fs)
	pflag.Parse()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	return v, nil
}

func getConfig() (Config, error) {
	v, err := getViper()
	if err != nil {
		return Config{}, err
	}

	return Config{
		PrintVersion: v.GetBool(versionKey),
		DataDir:      v.GetString(dataDirKey),
		ListenAddr:   v.GetString(listenAddrKey),
	}, nil
}
