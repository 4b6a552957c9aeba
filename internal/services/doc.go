// Package services composes the data processing core into the four use
// cases: the population trend chart, the penguin census change report, the
// observation series statistics and the word frequency report with its
// cloud.
//
// Every service implements Service and reports through Result. A use case
// that cannot produce its data (missing input, unknown country, no
// qualifying records) returns a Result with Err set and no artifacts. Once
// the data exists each output file is written independently, and a write
// failure is recorded on that Artifact only.
//
// Renderers are injected through the ChartRenderer and CloudRenderer
// interfaces; the file writers come from the exporter package.
//
// Example:
//
//	svc := services.NewStatisticsService(cfg.Statistics, fileManager, textWriter, logger)
//	result := svc.Run(ctx)
//	if result.Failed() {
//	    logger.Error("use case failed", "result", result)
//	}
package services
