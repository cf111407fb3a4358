package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
	"github.com/custodia-labs/sbml2biopax/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// WriterFactory builds a pathway writer for the given output settings.
type WriterFactory func(domain.OutputSettings) driven.PathwayWriter

// ConversionService reads a source model, emits it and replaces the
// output file in one linear pass.
type ConversionService struct {
	reader    driven.ModelReader
	newWriter WriterFactory
	files     driven.FileSink
	settings  driving.SettingsService
}

// NewConversionService creates a new conversion service.
func NewConversionService(
	reader driven.ModelReader,
	newWriter WriterFactory,
	files driven.FileSink,
	settings driving.SettingsService,
) *ConversionService {
	return &ConversionService{
		reader:    reader,
		newWriter: newWriter,
		files:     files,
		settings:  settings,
	}
}

// Convert converts inputPath to outputPath using the current settings.
func (s *ConversionService) Convert(ctx context.Context, inputPath, outputPath string) (*domain.ConversionReport, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return s.ConvertWith(ctx, inputPath, outputPath, settings.Output)
}

// ConvertWith converts inputPath to outputPath. The output file is
// replaced only after the whole document has been produced.
func (s *ConversionService) ConvertWith(
	ctx context.Context,
	inputPath, outputPath string,
	output domain.OutputSettings,
) (*domain.ConversionReport, error) {
	if inputPath == "" || outputPath == "" {
		return nil, fmt.Errorf("%w: input and output paths are required", domain.ErrInvalidInput)
	}

	start := time.Now()
	report := &domain.ConversionReport{
		RunID:      uuid.NewString(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
	log := logger.Logger().With(zap.String("run_id", report.RunID))

	logger.Section("Extract")
	model, err := s.read(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	report.Model = model.Stats()

	logger.Section("Emit")
	writer := s.newWriter(output)
	logger.Debug("writing %s to %s (indent=%d, locations=%s)", writer.Format(), outputPath, output.Indent, output.LocationStyle)

	err = s.files.WriteAtomic(outputPath, func(w io.Writer) error {
		cw := &countingWriter{w: w}
		stats, err := writer.Write(ctx, cw, model)
		if err != nil {
			return err
		}
		report.Emitted = *stats
		report.Bytes = cw.n
		return nil
	})
	if err != nil {
		log.Debug("conversion failed", zap.Error(err))
		return nil, fmt.Errorf("convert %s: %w", inputPath, err)
	}

	report.Duration = time.Since(start)
	log.Info("conversion complete",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("bytes", report.Bytes),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// Inspect extracts the intermediate model from inputPath.
func (s *ConversionService) Inspect(ctx context.Context, inputPath string) (*domain.Model, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("%w: input path is required", domain.ErrInvalidInput)
	}
	return s.read(ctx, inputPath)
}

func (s *ConversionService) read(ctx context.Context, inputPath string) (*domain.Model, error) {
	content, err := s.files.ReadAll(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	logger.Debug("read %d bytes from %s", len(content), inputPath)

	model, err := s.reader.Read(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.reader.Format(), inputPath, err)
	}
	return model, nil
}

// countingWriter counts bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
