// Package app wires configuration, logging, telemetry and the use case
// services into one runnable application.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, an optional YAML file and the environment
//	2. Resolve the data directories and anchor log, metrics and trace files
//	3. Initialize the global logger
//	4. Create the output directories and start telemetry
//	5. Build the writers, renderers and one service per use case
//
// # Running
//
// Each use case runs under Run, which gives it a trace id and a span,
// recovers from panics and records its outcome in the run metrics. RunAll
// runs every use case concurrently, bounded by the configured parallelism.
// Use cases never cancel each other.
//
//	application, err := app.NewApplication(configPath)
//	if err != nil {
//	    return err
//	}
//	defer application.Shutdown(context.Background())
//	results := application.RunAll(ctx)
//
// Shutdown flushes spans, writes the metrics textfile and closes the log
// file.
package app
