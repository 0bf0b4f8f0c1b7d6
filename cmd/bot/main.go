package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"img565/pkg/bot"
	"img565/pkg/convert"
	"img565/pkg/device/eyelink"
	"img565/pkg/device/remote"
	"img565/pkg/device/virtual"
	"img565/pkg/fanout"
	"img565/pkg/proto"
	"img565/pkg/source"
)

var token = flag.String("tg-token", "", "telegram bot token")
var serial = flag.String("serial", "", "serial name or remote addr, empty for virtual")
var fit = flag.String("fit", "stretch", "fit mode: stretch or cover")
var strategy = flag.String("strategy", "mirror", "default push strategy")
var light = flag.Uint8("light", 100, "set light")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *token == "" {
		log.Fatal("need --tg-token")
	}

	logger, _ := zap.NewDevelopment()
	if !*debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}

	var dev proto.Control
	var devErr error

	switch {
	case *serial == "":
		dev = virtual.Mock(logger)
	case strings.Contains(*serial, ":"):
		dev, devErr = remote.New(*serial)
	default:
		dev, devErr = eyelink.New(proto.NewSerial(*serial), logger)
	}

	if devErr != nil {
		log.Fatal(devErr)
	}

	if err := dev.Startup(); err != nil {
		log.Fatal(err)
	}

	if err := dev.SetLight(*light); err != nil {
		log.Fatal(err)
	}

	mode, err := convert.ParseFit(*fit)
	if err != nil {
		log.Fatal(err)
	}

	strat, err := fanout.Parse(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	session := convert.NewSession(convert.WithFit(mode))
	fetcher := source.NewFetcher(afero.NewOsFs(), logger)
	pusher := fanout.NewPusher(dev, fanout.WithStrategy(strat))

	b, err := bot.New(*token, dev, session, fetcher, pusher)
	if err != nil {
		log.Fatal(err)
	}

	b.Start()
	logger.Info("bot started")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")

	b.Stop()
	if err := dev.Shutdown(); err != nil {
		logger.With(zap.Error(err)).Info("shutdown failed")
	}

	logger.Info("exited")
}
