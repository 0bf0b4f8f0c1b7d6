package main

import (
	"bytes"
	"log"
	"strings"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"img565/pkg/convert"
	"img565/pkg/device/eyelink"
	"img565/pkg/device/remote"
	"img565/pkg/device/virtual"
	"img565/pkg/export"
	"img565/pkg/fanout"
	"img565/pkg/proto"
	"img565/pkg/source"
)

var in = flag.String("in", "", "image path or url")
var out = flag.String("out", "", "write rgb565 binary to path")
var preview = flag.String("preview", "", "write resized png to path")
var size = flag.String("size", "", "target size as WxH, defaults to source size")
var fit = flag.String("fit", "stretch", "fit mode: stretch or cover")
var push = flag.Bool("push", false, "push to the panels")
var serial = flag.String("serial", "ttyACM0", "serial name or remote addr, empty for virtual")
var strategy = flag.String("strategy", "mirror", "push strategy: mirror, split or blocks")
var light = flag.Uint8("light", 100, "set light")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	if !*debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}

	if *in == "" {
		log.Fatal("need --in")
	}

	if *out == "" && *preview == "" && !*push {
		log.Fatal("nothing to do: need --out, --preview or --push")
	}

	mode, err := convert.ParseFit(*fit)
	if err != nil {
		log.Fatal(err)
	}

	fs := afero.NewOsFs()
	session := convert.NewSession(convert.WithFit(mode))

	bs, err := source.NewFetcher(fs, logger).Fetch(*in)
	if err != nil {
		log.Fatal(err)
	}

	if err := session.Load(bytes.NewReader(bs)); err != nil {
		log.Fatal(err)
	}

	target, _ := session.SourceDimensions()
	if *size != "" {
		if target, err = convert.ParseSize(*size); err != nil {
			log.Fatal(err)
		}
	}

	if err := session.Resize(target); err != nil {
		log.Fatal(err)
	}

	writer := export.NewWriter(fs, logger)

	if *out != "" {
		data, err := session.Encode()
		if err != nil {
			log.Fatal(err)
		}

		if err := writer.Bin(*out, data); err != nil {
			log.Fatal(err)
		}
	}

	if *preview != "" {
		img, _ := session.Resized()
		if err := writer.Preview(*preview, img); err != nil {
			log.Fatal(err)
		}
	}

	if *push {
		if err := pushPanels(session, logger); err != nil {
			log.Fatal(err)
		}
	}
}

func pushPanels(session *convert.Session, logger *zap.Logger) error {
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
		return devErr
	}

	if err := dev.Startup(); err != nil {
		return err
	}

	if err := dev.SetLight(*light); err != nil {
		return err
	}

	strat, err := fanout.Parse(*strategy)
	if err != nil {
		return err
	}

	img, _ := session.Resized()
	return fanout.NewPusher(dev).PushWith(strat, img)
}
