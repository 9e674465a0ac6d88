package encode

import (
	"fmt"
	"path/filepath"
	"strings"

	"shrink/internal/config"
	"shrink/internal/services"
)

// Codec selects the video encoder passed to ffmpeg.
type Codec string

const (
	CodecH264 Codec = "libx264"
	CodecH265 Codec = "libx265"
)

// ParseCodec maps user-facing codec names onto encoder selectors.
func ParseCodec(value string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "h264", "x264", "avc", "libx264":
		return CodecH264, nil
	case "h265", "x265", "hevc", "libx265":
		return CodecH265, nil
	default:
		return "", services.Wrap(services.ErrValidation, "encoder", "parse codec", fmt.Sprintf("unsupported codec %q", value), nil)
	}
}

// RateMode distinguishes the two rate-control strategies.
type RateMode int

const (
	// RateConstantQuality encodes at a fixed CRF in a single pass.
	RateConstantQuality RateMode = iota
	// RateTargetSize fits the output into a requested size by probing the
	// source duration and computing a bitrate.
	RateTargetSize
)

// Quality selects the rate-control strategy. Construct it with
// ConstantQuality or TargetSize; exactly one variant is ever active.
type Quality struct {
	Mode            RateMode
	CRF             int
	TargetMegabytes float64
}

// ConstantQuality requests a fixed-CRF encode.
func ConstantQuality(crf int) Quality {
	return Quality{Mode: RateConstantQuality, CRF: crf}
}

// TargetSize requests an encode that fits into the given size.
func TargetSize(megabytes float64) Quality {
	return Quality{Mode: RateTargetSize, TargetMegabytes: megabytes}
}

// Intent is the user-declared desired outcome of a compression job.
type Intent struct {
	SourcePath string
	OutputPath string
	// Width caps the output resolution; height is derived from the source
	// aspect ratio unless Height is set explicitly. Zero keeps the source
	// resolution.
	Width  int
	Height int
	// FPS caps the output frame rate. Zero keeps the source rate.
	FPS int
	// Codec selects the encoder. Empty defers to the engine default.
	Codec   Codec
	Quality Quality
}

// compressedSuffix marks outputs produced by shrink. The recent-file
// scanner excludes filenames carrying it so compressed results do not
// reappear as fresh sources.
const compressedSuffix = "_compressed"

// Normalize expands both paths to absolute form and derives a default
// output path (<stem>_compressed<ext> next to the source) when none was
// given.
func (i *Intent) Normalize() error {
	source, err := config.ExpandPath(i.SourcePath)
	if err != nil {
		return services.Wrap(services.ErrValidation, "encoder", "resolve source path", "", err)
	}
	i.SourcePath = source

	if strings.TrimSpace(i.OutputPath) == "" {
		ext := filepath.Ext(source)
		stem := strings.TrimSuffix(filepath.Base(source), ext)
		i.OutputPath = filepath.Join(filepath.Dir(source), stem+compressedSuffix+ext)
		return nil
	}

	output, err := config.ExpandPath(i.OutputPath)
	if err != nil {
		return services.Wrap(services.ErrValidation, "encoder", "resolve output path", "", err)
	}
	i.OutputPath = output
	return nil
}

// Validate enforces the intent invariants before any work starts.
func (i Intent) Validate() error {
	if strings.TrimSpace(i.SourcePath) == "" {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "source path required", nil)
	}
	if strings.TrimSpace(i.OutputPath) == "" {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "output path required", nil)
	}
	if i.SourcePath == i.OutputPath {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "output path must differ from source", nil)
	}
	if i.Width < 0 || i.Height < 0 {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "resolution cap must not be negative", nil)
	}
	if i.Height > 0 && i.Width == 0 {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "height cap requires a width cap", nil)
	}
	if i.FPS < 0 {
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "frame rate cap must not be negative", nil)
	}
	switch i.Quality.Mode {
	case RateConstantQuality:
		if i.Quality.CRF < 0 || i.Quality.CRF > 51 {
			return services.Wrap(services.ErrValidation, "encoder", "validate intent", fmt.Sprintf("crf %d outside 0..51", i.Quality.CRF), nil)
		}
	case RateTargetSize:
		if i.Quality.TargetMegabytes <= 0 {
			return services.Wrap(services.ErrValidation, "encoder", "validate intent", "target size must be positive", nil)
		}
	default:
		return services.Wrap(services.ErrValidation, "encoder", "validate intent", "unknown rate-control mode", nil)
	}
	return nil
}
