package zipenc

import (
	"context"
	"fmt"
	"os"
)

// TranscodeFile transcodes the archive at inPath into a new file at outPath.
//
// outPath is created or truncated. If transcoding fails, the partially
// written output is left in place; it is not a valid archive.
func TranscodeFile(ctx context.Context, inPath, outPath string, opts ...Option) (*Report, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := cfg.codec(); err != nil {
		return nil, err
	}

	in, err := os.Open(inPath) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	report, err := Transcode(ctx, in, out, opts...)
	if err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close output: %w", err)
	}
	return report, nil
}
