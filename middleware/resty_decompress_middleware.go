package middleware

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// DecompressMiddleware inflates br and deflate bodies in place. Clients that
// set Accept-Encoding themselves do not get transparent decompression from net/http.
// resty gunzips gzip bodies itself but keeps the header, so gzip is left alone.
func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	encoding := resp.Header().Get("Content-Encoding")
	if encoding == "" || len(resp.Body()) == 0 {
		return nil
	}

	var reader io.ReadCloser

	switch encoding {
	case "br":
		reader = io.NopCloser(brotli.NewReader(bytes.NewReader(resp.Body())))
	case "deflate":
		reader = flate.NewReader(bytes.NewReader(resp.Body()))
	default:
		return nil
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("decompress %s body: %w", encoding, err)
	}

	resp.Header().Del("Content-Encoding")
	resp.SetBody(decompressed)
	return nil
}
