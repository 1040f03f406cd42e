package stats

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/letterstat/internal/letters"
	"github.com/verte-zerg/letterstat/internal/source"
)

// Options selects which letter class is dropped from each statistic.
type Options struct {
	DropFromLetters letters.Class
	DropFromPairs   letters.Class
}

// DefaultOptions drops vowels from single letters and consonants from pairs.
func DefaultOptions() Options {
	return Options{
		DropFromLetters: letters.Vowel,
		DropFromPairs:   letters.Consonant,
	}
}

// Report holds the filtered statistics for both input files.
type Report struct {
	LettersPath string
	PairsPath   string
	Letters     *Collection
	Pairs       *Collection
}

// BuildReport counts single letters in lettersPath and pairs in pairsPath,
// then applies the class filters. Both paths are checked before either file
// is opened.
func BuildReport(ctx context.Context, lettersPath, pairsPath string, opts Options, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for _, path := range []string{lettersPath, pairsPath} {
		if err := source.Check(path); err != nil {
			return Report{}, err
		}
	}

	letterStats, err := countFile(ctx, lettersPath, CountLetters, logger)
	if err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	pairStats, err := countFile(ctx, pairsPath, CountPairs, logger)
	if err != nil {
		return Report{}, err
	}

	removed := letterStats.RemoveClass(opts.DropFromLetters)
	logger.Debug("filtered letters", "class", opts.DropFromLetters.String(), "removed", removed, "kept", letterStats.Len())
	removed = pairStats.RemoveClass(opts.DropFromPairs)
	logger.Debug("filtered pairs", "class", opts.DropFromPairs.String(), "removed", removed, "kept", pairStats.Len())

	return Report{
		LettersPath: lettersPath,
		PairsPath:   pairsPath,
		Letters:     letterStats,
		Pairs:       pairStats,
	}, nil
}

func countFile(ctx context.Context, path string, count func(RuneSource) (*Collection, error), logger *slog.Logger) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Warn("failed to close input", "path", path, "error", cerr)
		}
	}()
	logger.Debug("reading input", "path", path, "size", humanize.Bytes(uint64(src.Size())))

	c, err := count(src)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", path, err)
	}
	logger.Debug("counted input", "path", path, "keys", c.Len(), "total", c.Total())
	return c, nil
}

// Write renders both statistics in the given format, letters first.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatPlain:
		if err := Render(w, r.Letters); err != nil {
			return err
		}
		return Render(w, r.Pairs)
	case FormatTable:
		if err := RenderTable(w, "Letters ("+r.LettersPath+")", r.Letters); err != nil {
			return err
		}
		return RenderTable(w, "Pairs ("+r.PairsPath+")", r.Pairs)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Output formats accepted by Report.Write.
const (
	FormatPlain = "plain"
	FormatTable = "table"
)
