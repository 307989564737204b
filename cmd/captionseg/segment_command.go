package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"captionseg/internal/captions"
	"captionseg/internal/config"
	"captionseg/internal/logging"
	"captionseg/internal/segcache"
	"captionseg/internal/sentence"
	"captionseg/internal/transcript"
)

func newSegmentCommand(configFlag *string) *cobra.Command {
	var (
		correctedPath string
		languageFlag  string
		formatFlag    string
		outputPath    string
		parallelism   int
	)

	cmd := &cobra.Command{
		Use:   "segment <transcript.json>",
		Short: "Re-segment a transcript into display-ready captions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			rawInput, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			payload, err := transcript.Parse(rawInput)
			if err != nil {
				return err
			}

			correctedText := ""
			if correctedPath != "" {
				data, err := os.ReadFile(correctedPath)
				if err != nil {
					return fmt.Errorf("read corrected text: %w", err)
				}
				correctedText = strings.TrimSpace(string(data))
			}

			lang := languageFlag
			if lang == "" {
				lang = payload.Language
			}

			out, err := runSegmentation(cmd, cfg, logger, segmentRequest{
				raw:       rawInput,
				payload:   payload,
				corrected: correctedText,
				language:  lang,
				limits:    cfg.EngineLimits(),
				parallel:  parallelism,
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, formatFlag, outputPath)
		},
	}

	cmd.Flags().StringVar(&correctedPath, "corrected", "", "Path to corrected transcript text")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language code (overrides the transcript's)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or srt")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default stdout)")
	cmd.Flags().IntVar(&parallelism, "parallelism", 4, "Segments processed concurrently")

	return cmd
}

type segmentRequest struct {
	raw       []byte
	payload   transcript.Payload
	corrected string
	language  string
	limits    captions.Limits
	parallel  int
}

func runSegmentation(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, req segmentRequest) (transcript.Payload, error) {
	ctx := cmd.Context()
	started := time.Now()

	var store *segcache.Store
	key := ""
	if cfg.Cache.Enabled {
		opened, err := segcache.Open(ctx, config.ExpandPath(cfg.Cache.Path))
		if err != nil {
			// Cache trouble never blocks segmentation.
			logger.Warn("result cache unavailable", logging.Error(err))
		} else {
			store = opened
			defer store.Close()
			key = segcache.Key(req.raw, req.corrected, req.language, req.limits)
			if cached, ok, err := store.Get(ctx, key); err == nil && ok {
				payload, err := transcript.Parse(cached)
				if err == nil {
					logger.Debug("result cache hit", logging.String("key", key))
					return payload, nil
				}
				logger.Warn("discarding unreadable cache entry", logging.Error(err))
			}
		}
	}

	splitter, err := sentence.NewSplitter()
	if err != nil {
		return transcript.Payload{}, err
	}

	out, stats, err := transcript.Process(ctx, req.payload, transcript.Options{
		CorrectedText: req.corrected,
		Language:      req.language,
		Limits:        req.limits,
		Segmenter:     captions.New(captions.Options{Sentences: splitter, Logger: logger}),
		Logger:        logger,
		Parallelism:   req.parallel,
	})
	if err != nil {
		return transcript.Payload{}, err
	}

	if store != nil {
		var buf bytes.Buffer
		if err := out.Encode(&buf); err == nil {
			if err := store.Put(ctx, key, buf.Bytes()); err != nil {
				logger.Warn("result cache write failed", logging.Error(err))
			}
		}
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(cmd.ErrOrStderr(), renderStatsTable(stats))
	}
	logger.Debug("segmentation finished",
		logging.Int("segments", len(out.Segments)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return out, nil
}

func writeOutput(cmd *cobra.Command, payload transcript.Payload, format, outputPath string) error {
	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(format) {
	case "json":
		return payload.Encode(w)
	case "srt":
		return transcript.WriteSRT(w, payload)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
