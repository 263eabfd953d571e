package main

import (
	"context"
	"time"

	lib "github.com/qmertyy/seamon"
	"github.com/qmertyy/seamon/vessel"
)

func main() {
	lib.InitLogging()
	if err := lib.LoadAppConfig(); err != nil {
		panic(err)
	}

	store := vessel.NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	go lib.RunFeed(ctx, store)

	sweeper := vessel.NewSweeper(store,
		time.Duration(lib.Config.Store.TTLSeconds)*time.Second,
		time.Duration(lib.Config.Store.SweepIntervalMS)*time.Millisecond)
	go sweeper.Run(ctx)

	lib.StartServer(store)
	lib.HandleGracefulShutdown(cancel)
}
