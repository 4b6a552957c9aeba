package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dataproc/internal/services"
)

// Exit codes returned by Execute
const (
	ExitOK        = 0
	ExitInitError = 1
)

// Execute builds the application from configPath and runs the given use
// cases, or all of them when none are given. Use case failures are logged
// and do not change the exit code; only a failure to start does.
func Execute(configPath string, useCases ...services.UseCase) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := NewApplication(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		return ExitInitError
	}
	defer func() {
		if err := application.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	application.CheckInputs(ctx)

	if len(useCases) == 0 {
		application.RunAll(ctx)
		return ExitOK
	}

	for _, uc := range useCases {
		if _, err := application.RunUseCase(ctx, uc); err != nil {
			application.Logger.ErrorContext(ctx, "Cannot run use case",
				slog.String("use_case", string(uc)),
				slog.String("error", err.Error()))
		}
	}
	return ExitOK
}
