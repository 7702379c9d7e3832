package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"fingermachine/config"
	"fingermachine/internal/container"
	"fingermachine/internal/domain/entity"
	"fingermachine/internal/infrastructure/render"
	"fingermachine/pkg/log"
)

const usage = "you must supply the path to your image"

var version = "dev"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fingermachine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the detection result as JSON")
	noPreview := fs.Bool("no-preview", false, "skip the debug preview")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fingermachine [flags] <image>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, usage)
		return 0
	}
	imagePath := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := log.NewLogger(log.Options{
		Level:    cfg.LogLevel,
		File:     cfg.LogFile,
		Env:      cfg.AppEnv,
		Output:   stderr,
		NoColors: stderr != os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.ContextWithRunID(ctx, log.NewRunID())
	entry := log.WithRunID(ctx, logger).WithField("image", imagePath)

	// Собираем сервисы приложения
	c, err := container.New(cfg, entry)
	if err != nil {
		entry.WithError(err).Error("failed to build application")
		return 1
	}

	result, err := c.DetectionService.Detect(ctx, imagePath)
	if err != nil {
		entry.WithError(err).Error("detection failed")
		return 1
	}

	if *asJSON {
		err = writeJSON(stdout, result)
	} else {
		err = writeText(stdout, result)
	}
	if err != nil {
		entry.WithError(err).Error("failed to write result")
		return 1
	}

	if *noPreview || c.PreviewKind == render.PresenterNone {
		return 0
	}
	if err := c.DetectionService.Preview(ctx, imagePath, result); err != nil {
		entry.WithError(err).Error("preview failed")
		return 1
	}
	entry.WithFields(logrus.Fields{"preview": c.PreviewKind}).Debug("preview shown")
	return 0
}

func writeJSON(w io.Writer, result *entity.DetectionResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeText(w io.Writer, result *entity.DetectionResult) error {
	for _, category := range entity.Categories {
		if _, err := fmt.Fprintf(w, "%s:", category); err != nil {
			return err
		}
		for _, m := range result.Markers[category] {
			fmt.Fprintf(w, " (%.1f, %.1f)", m.Center.X, m.Center.Y)
		}
		fmt.Fprintln(w)
	}
	if result.Borders != nil {
		fmt.Fprintf(w, "top_left: (%.1f, %.1f)\n", result.Borders.TopLeft.X, result.Borders.TopLeft.Y)
	}
	if result.HasPath() {
		_, err := fmt.Fprintln(w, "path detected")
		return err
	}
	return nil
}
