// Package source resolves image references to raw bytes. A reference is
// either a filesystem path or an http(s) URL; nothing here tries to decode
// what it fetched.
package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Fetcher struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func NewFetcher(fs afero.Fs, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

// Fetch reads the full contents of ref.
func (f *Fetcher) Fetch(ref string) ([]byte, error) {
	var (
		bs  []byte
		err error
	)

	if isURL(ref) {
		bs, err = f.download(ref)
	} else {
		bs, err = afero.ReadFile(f.fs, ref)
	}
	if err != nil {
		return nil, err
	}

	f.log.With(
		zap.String("ref", ref),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("image fetched")

	return bs, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (f *Fetcher) download(url string) ([]byte, error) {
	resp, err := f.cli.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s failed: %w", url, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetch %s failed: %s", url, resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, fmt.Errorf("fetch %s failed: %w", url, err)
	}

	return buf.Bytes(), nil
}
