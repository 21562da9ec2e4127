package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	docpress "github.com/aplgr/docpress-go"
	"github.com/aplgr/docpress-go/internal/config"
	"github.com/aplgr/docpress-go/internal/logging"
)

func main() {
	var (
		urlFlag     = flag.String("url", "", "render a remote URL instead of a local HTML file")
		formatFlag  = flag.String("format", "pdf", "output format: pdf, png, jpeg, bmp, tga, qoi, svg")
		paperFlag   = flag.String("paper", "", "paper size, e.g. A4")
		landscape   = flag.Bool("landscape", false, "landscape orientation")
		marginsFlag = flag.String("margins", "", "margins preset or T,R,B,L in millimeters")
		outFlag     = flag.String("o", "", "output file (default output.<format>)")
		healthFlag  = flag.Bool("health", false, "check service health and exit")
	)
	flag.Parse()

	cfg := config.Load()
	logging.Init(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)

	client := newClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSecs)*time.Second)
	defer cancel()

	if *healthFlag {
		if !client.Health(ctx) {
			logging.Error("Service unhealthy", "base_url", cfg.BaseURL)
			os.Exit(1)
		}
		logging.Info("Service healthy", "base_url", cfg.BaseURL)
		return
	}

	req, format, err := buildRequest(*urlFlag, flag.Arg(0), *formatFlag, *paperFlag, *landscape, *marginsFlag)
	if err != nil {
		logging.Error("Invalid arguments", "error", err.Error())
		os.Exit(2)
	}

	out := *outFlag
	if out == "" {
		out = "output." + *formatFlag
	}

	data, err := client.Render(ctx, req)
	if err != nil {
		var srvErr *docpress.ServerError
		if errors.As(err, &srvErr) {
			logging.Error("Render rejected", "status", srvErr.Status, "message", srvErr.Message)
		} else {
			logging.Error("Render failed", "error", err.Error())
		}
		os.Exit(1)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		logging.Error("Cannot write output", "path", out, "error", err.Error())
		os.Exit(1)
	}
	logging.Info("Rendered", "output", out, "format", format.wireName(), "bytes", len(data))
}

func newClient(cfg config.Config) *docpress.Client {
	opts := []docpress.Option{
		docpress.WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second),
		docpress.WithLogger(logging.Logger()),
	}
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB})
		opts = append(opts, docpress.WithCache(docpress.NewRedisStore(rdb), cfg.Cache.TTL))
	}
	return docpress.New(cfg.BaseURL, opts...)
}

// buildRequest assembles a render request from CLI arguments. Exactly one of
// url and inputPath must be given.
func buildRequest(url, inputPath, format, paper string, landscape bool, margins string) (*docpress.Request, namedFormat, error) {
	f, err := parseFormat(format)
	if err != nil {
		return nil, f, err
	}

	var req *docpress.Request
	switch {
	case url != "" && inputPath != "":
		return nil, f, errors.New("pass either -url or an input file, not both")
	case url != "":
		req = docpress.FromURL(url)
	case inputPath != "":
		html, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, f, fmt.Errorf("read %s: %w", inputPath, err)
		}
		req = docpress.FromHTML(string(html))
	default:
		return nil, f, errors.New("pass -url or an input file")
	}

	req.Format(f.format)
	if paper != "" {
		req.Paper(paper)
	}
	if landscape {
		req.Orientation(docpress.Landscape)
	}
	if margins != "" {
		req.Margins(margins)
	}
	return req, f, nil
}

// namedFormat keeps the CLI spelling next to the enum for log output.
type namedFormat struct {
	format docpress.Format
	name   string
}

func (f namedFormat) wireName() string { return f.name }

func parseFormat(name string) (namedFormat, error) {
	formats := map[string]docpress.Format{
		"pdf":  docpress.PDF,
		"png":  docpress.PNG,
		"jpeg": docpress.JPEG,
		"bmp":  docpress.BMP,
		"tga":  docpress.TGA,
		"qoi":  docpress.QOI,
		"svg":  docpress.SVG,
	}
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return namedFormat{}, fmt.Errorf("unknown format %q", name)
	}
	return namedFormat{format: f, name: strings.ToLower(name)}, nil
}
