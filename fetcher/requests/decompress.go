package requests

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// Accepted content encodings, matching the decoders below.
const acceptEncoding = "gzip, deflate, br, zstd"

// getDecompressedBody wraps the body on the decoder for its Content-Encoding.
func getDecompressedBody(response *http.Response) (io.ReadCloser, error) {
	switch response.Header.Get("Content-Encoding") {

	case "gzip":
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return reader, nil

	case "deflate":
		reader, err := zlib.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create deflate reader: %w", err)
		}
		return reader, nil

	case "br":
		return io.NopCloser(brotli.NewReader(response.Body)), nil

	case "zstd":
		decoder, err := zstd.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return decoder.IOReadCloser(), nil

	default:
		return io.NopCloser(response.Body), nil
	}
}
