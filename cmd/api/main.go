package main

import (
	"btctreasury/cmd"
	"log"
	"os"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	deps.Logger.Infow("starting api", "commit", os.Getenv("commit_hash"), "port", deps.Config.Api.Port)
	err = deps.ApiHandler().StartApi(deps.Config.Api.Port)
	if err != nil {
		deps.Logger.Fatal(err)
	}
}
