/*
Renders a colour cube and a capped cylinder side by side and keeps
turning them until the window is closed or q/Esc is pressed.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/solids/engine"
	"github.com/spaghettifunk/solids/engine/config"
	"github.com/spaghettifunk/solids/engine/core"
	"github.com/spaghettifunk/solids/testbed"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	core.SetLogLevel(cfg.LogLevel())

	tb, err := testbed.NewTestGame(cfg, *configPath)
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// glfw must be torn down on the main thread, so the signal only stops
	// the loop and the shutdown happens once Run returns.
	go func() {
		sig := <-sigCh
		core.LogInfo("received %s", sig)
		engine.Stop()
	}()

	// run engine
	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		panic(runErr)
	}
}
