package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/api"
	"shrink/internal/config"
	"shrink/internal/encode"
)

type compressFlags struct {
	output     string
	crf        int
	targetSize float64
	width      int
	height     int
	fps        int
	codec      string
}

func newCompressCommand(ctx *commandContext) *cobra.Command {
	flags := &compressFlags{}

	cmd := &cobra.Command{
		Use:   "compress <path>",
		Short: "Compress a video file",
		Long: `Compress a video with ffmpeg.

By default the output is encoded at a constant quality (CRF) and written
next to the source as <name>_compressed.<ext>. Pass --target-size to fit
the output into a size budget instead; the source duration is probed and
a matching bitrate is computed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			intent, err := buildIntent(cfg, args[0], flags, cmd.Flags().Changed("crf"))
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *api.Service) error {
				result, err := svc.Compress(cmd.Context(), intent)
				if err != nil {
					return err
				}
				printCompressResult(cmd, result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output path (default <name>_compressed.<ext> next to the source)")
	cmd.Flags().IntVar(&flags.crf, "crf", 0, "Constant-quality factor, 0-51 (lower is better quality)")
	cmd.Flags().Float64Var(&flags.targetSize, "target-size", 0, "Fit the output into this many megabytes")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Cap the output width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Cap the output height in pixels (requires --width)")
	cmd.Flags().IntVar(&flags.fps, "fps", 0, "Cap the output frame rate")
	cmd.Flags().StringVar(&flags.codec, "codec", "", "Video codec (h264 or h265)")
	cmd.MarkFlagsMutuallyExclusive("crf", "target-size")

	return cmd
}

// buildIntent maps command-line flags onto a compression intent. When
// neither quality flag was given, the configured default CRF applies.
func buildIntent(cfg *config.Config, source string, flags *compressFlags, crfSet bool) (encode.Intent, error) {
	codec, err := encode.ParseCodec(flags.codec)
	if err != nil {
		return encode.Intent{}, err
	}

	quality := encode.ConstantQuality(cfg.Encoding.DefaultCRF)
	switch {
	case flags.targetSize > 0:
		quality = encode.TargetSize(flags.targetSize)
	case crfSet:
		quality = encode.ConstantQuality(flags.crf)
	}

	return encode.Intent{
		SourcePath: source,
		OutputPath: flags.output,
		Width:      flags.width,
		Height:     flags.height,
		FPS:        flags.fps,
		Codec:      codec,
		Quality:    quality,
	}, nil
}

func printCompressResult(cmd *cobra.Command, result api.CompressResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Compressed to %s in %s\n", result.Output, result.Elapsed.Round(timeRounding))
	if result.BitrateKbps > 0 {
		fmt.Fprintf(out, "Planned bitrate: %d kbps\n", result.BitrateKbps)
	}
}
