package remote

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"img565/pkg/proto"
)

// Proxy registers dev as an rpc service and serves it for the lifetime of
// the fx app.
func Proxy(dev proto.Control, srv *http.Server, lifecycle fx.Lifecycle) error {
	svc := &Service{dev: dev}
	if err := rpc.Register(svc); err != nil {
		return err
	}

	rpc.HandleHTTP()

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	}

	return errors.New("unknown command")
}

func (s *Service) SetLight(light uint8, _ *EmptyResponse) error {
	return s.dev.SetLight(light)
}

func (s *Service) Blit(req *BlitRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.Blit(req.Screen, req.PosX, req.PosY, img)
}
