package main

import (
	"insightengine/cmd"
	"insightengine/internal/util"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	log := zap.S()

	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatalw("failed to load secrets", "error", err)
	}

	apiHandler, err := cmd.InitializeDependencies(secrets)
	if err != nil {
		log.Fatalw("failed to initialize dependencies", "error", err)
	}
	defer cmd.CloseDependencies(apiHandler)

	log.Infow("starting api", "port", secrets.Port, "env", secrets.Env)
	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		log.Fatalw("api exited", "error", err)
	}
}
