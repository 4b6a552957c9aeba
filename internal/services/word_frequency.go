package services

import (
	"context"
	"log/slog"
	"strconv"

	"dataproc/internal/config"
	"dataproc/internal/errors"
	"dataproc/internal/exporter"
	"dataproc/internal/files"
	"dataproc/internal/render"
	"dataproc/internal/textanalysis"
)

// CloudRenderer draws weighted words into an image file
type CloudRenderer interface {
	RenderWordCloud(words []render.Word, path string) error
}

// WordFrequencyService counts the non stop words of a text, writes the
// ranked counts as CSV and renders the most frequent ones as a word cloud.
type WordFrequencyService struct {
	cfg       config.WordCloudConfig
	files     *files.Manager
	csv       *exporter.CSVWriter
	renderer  CloudRenderer
	tokenizer *textanalysis.Tokenizer
	logger    *slog.Logger
}

// NewWordFrequencyService creates a new word frequency service using the
// default stop words.
func NewWordFrequencyService(cfg config.WordCloudConfig, fm *files.Manager, csv *exporter.CSVWriter, renderer CloudRenderer, logger *slog.Logger) *WordFrequencyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordFrequencyService{
		cfg:       cfg,
		files:     fm,
		csv:       csv,
		renderer:  renderer,
		tokenizer: textanalysis.NewTokenizer(nil),
		logger:    logger.With("component", "word_frequency_service"),
	}
}

// UseCase implements Service
func (s *WordFrequencyService) UseCase() UseCase {
	return UseCaseWordFrequency
}

// Run implements Service. The CSV and the cloud are independent artifacts;
// a failure writing one does not prevent the other.
func (s *WordFrequencyService) Run(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return failed(s.UseCase(), err)
	}

	table, err := s.Frequencies(ctx)
	if err != nil {
		return failed(s.UseCase(), err)
	}
	ranked := table.Rank()

	result := Result{UseCase: s.UseCase()}

	path, err := s.writeFrequencies(ranked)
	result.addArtifact(s.cfg.FrequencyFile, path, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Word frequencies not written", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		s.logger.InfoContext(ctx, "Word frequencies saved", slog.String("path", path), slog.Int("words", len(ranked)))
	}

	path, err = s.writeCloud(table.Top(s.cfg.MaxWords))
	result.addArtifact(s.cfg.CloudFile, path, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Word cloud not written", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		s.logger.InfoContext(ctx, "Word cloud saved", slog.String("path", path))
	}

	return result
}

// Frequencies reads the text and aggregates its tokens
func (s *WordFrequencyService) Frequencies(ctx context.Context) (*textanalysis.FrequencyTable, error) {
	text, err := s.files.ReadText(s.cfg.InputFile)
	if err != nil {
		return nil, err
	}

	table := textanalysis.Aggregate(s.tokenizer.Tokens(text))
	s.logger.InfoContext(ctx, "Word frequencies calculated",
		slog.Int("distinct_words", table.Len()),
		slog.Int("total_words", table.Total()))

	return table, nil
}

func (s *WordFrequencyService) writeFrequencies(ranked []textanalysis.WordCount) (string, error) {
	sw, err := s.csv.CreateStreamWriter(s.cfg.FrequencyFile, []string{"Word", "Frequency"})
	if err != nil {
		return s.files.OutputPath(s.cfg.FrequencyFile), err
	}
	for _, wc := range ranked {
		if err := sw.WriteRecord([]string{wc.Word, strconv.Itoa(wc.Count)}); err != nil {
			sw.Close()
			return sw.Path(), errors.NewStorageError("failed to write word frequency", err).WithContext("path", sw.Path())
		}
	}
	return sw.Path(), sw.Close()
}

func (s *WordFrequencyService) writeCloud(top []textanalysis.WordCount) (string, error) {
	path := s.files.OutputPath(s.cfg.CloudFile)
	if len(top) == 0 {
		return path, errors.NewEmptyResultError("no words to draw")
	}

	words := make([]render.Word, len(top))
	for i, wc := range top {
		words[i] = render.Word{Text: wc.Word, Weight: wc.Count}
	}

	if err := s.files.EnsureOutputDirectory(); err != nil {
		return path, err
	}
	if err := s.renderer.RenderWordCloud(words, path); err != nil {
		return path, errors.NewStorageError("failed to render word cloud", err).WithContext("path", path)
	}
	return path, nil
}
