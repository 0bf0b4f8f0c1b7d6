// Package remote forwards panel control over net/rpc, so the conversion
// shells can run on a different host than the serial link.
package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"img565/pkg/proto"
)

func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.rpc.Call("Service.Command", "startup", nil)
}

func (c *Client) Shutdown() error {
	return c.rpc.Call("Service.Command", "shutdown", nil)
}

func (c *Client) SetLight(light uint8) error {
	return c.rpc.Call("Service.SetLight", light, nil)
}

// Blit ships the raster as PNG; the server re-encodes to RGB565 on its side.
func (c *Client) Blit(screen uint8, posX uint16, posY uint16, image image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return err
	}

	return c.rpc.Call("Service.Blit", &BlitRequest{
		Screen: screen,
		PosX:   posX,
		PosY:   posY,
		Image:  buf.Bytes(),
	}, nil)
}
