package util

import (
	"fmt"
	"io"
	"log"
	"os"
)

// InitLog sends the standard logger to dest with prefix. An empty dest
// discards log output.
func InitLog(dest, prefix string) (io.Closer, error) {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	log.SetOutput(f)
	return f, nil
}
