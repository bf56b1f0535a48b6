// respdump decodes a RESP byte stream from a file or stdin and prints a
// one-line description of every value it contains.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eternalApril/respwire/internal/config"
	"github.com/eternalApril/respwire/internal/logger"
	"github.com/eternalApril/respwire/resp"
	"go.uber.org/zap"
)

const previewLimit = 32

func preview(b []byte) []byte {
	if len(b) > previewLimit {
		return b[:previewLimit]
	}
	return b
}

// describe renders a one-line human summary of a decoded value.
func describe(v resp.Value) string {
	switch val := v.(type) {
	case resp.SimpleString:
		return fmt.Sprintf("simple-string %q", val.Value())
	case resp.Error:
		return fmt.Sprintf("error %q", val.Value())
	case resp.Integer:
		return fmt.Sprintf("integer %s", val.RawValue())
	case resp.BulkString:
		if val.IsNull() {
			return "bulk-string <null>"
		}
		return fmt.Sprintf("bulk-string %d bytes %q", val.ValueLen(), preview(val.Value()))
	case resp.Array:
		if val.IsNull() {
			return "array <null>"
		}
		elements, err := val.Elements()
		if err != nil {
			return "array <corrupt>"
		}
		parts := make([]string, 0, len(elements))
		for _, element := range elements {
			parts = append(parts, describe(element))
		}
		return "array[" + strconv.Itoa(len(elements)) + "](" + strings.Join(parts, ", ") + ")"
	}
	return "unknown"
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync() //nolint:errcheck

	input := cfg.Dump.Input
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	in := os.Stdin
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			log.Error("cannot open input", zap.String("input", input), zap.Error(err))
			os.Exit(1)
		}
		defer f.Close() //nolint:errcheck
		in = f
	}

	dec := resp.NewDecoder(in)
	dec.MaxDepth = cfg.Limits.MaxDepth

	count := 0
	for cfg.Dump.MaxValues <= 0 || count < cfg.Dump.MaxValues {
		v, err := dec.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error("decode failed",
				zap.Int("values_decoded", count),
				zap.Error(err),
			)
			os.Exit(1)
		}

		fmt.Printf("%d\t%s\t(%d bytes)\n", count, describe(v), v.Len())
		count++
	}

	log.Info("stream decoded",
		zap.String("input", input),
		zap.Int("values", count),
	)
}
