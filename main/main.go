// (c) 2023, Onther Tech. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/inconshreveable/log15"

	"github.com/onther-tech/journalkv/database"
	"github.com/onther-tech/journalkv/database/leveldb"
	"github.com/onther-tech/journalkv/database/memdb"
	"github.com/onther-tech/journalkv/journaldb"
	"github.com/onther-tech/journalkv/service"
)

// Version is the server binary's version.
const Version = "1.0.0"

func main() {
	config, err := getConfig()
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	// Print version and exit
	if config.PrintVersion {
		fmt.Printf("%s@%s\n", service.Name, Version)
		os.Exit(0)
	}

	var store database.Store
	if config.DataDir == "" {
		log.Info("using in-memory backing store")
		store = memdb.New()
	} else {
		ldb, err := leveldb.New(config.DataDir)
		if err != nil {
			log.Error("couldn't open backing store", "dataDir", config.DataDir, "error", err)
			os.Exit(1)
		}
		defer ldb.Close()
		log.Info("opened leveldb backing store", "dataDir", config.DataDir)
		store = ldb
	}

	handler, err := service.NewHandler(journaldb.New(store))
	if err != nil {
		log.Error("couldn't register API service", "error", err)
		os.Exit(1)
	}

	log.Info("serving journalkv API", "addr", config.ListenAddr)
	if err := http.ListenAndServe(config.ListenAddr, handler); err != nil {
		log.Error("server returned an error", "error", err)
		os.Exit(1)
	}
}
