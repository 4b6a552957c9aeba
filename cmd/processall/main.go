// Command processall runs every use case concurrently. Use -only to restrict
// the run to a comma separated list of use cases.
package main

import (
	"flag"
	"os"
	"strings"

	"dataproc/internal/app"
	"dataproc/internal/services"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $DATAPROC_CONFIG or ./dataproc.yaml)")
	only := flag.String("only", "", "comma separated use cases to run (population_chart,penguin_census,population_statistics,word_frequency)")
	flag.Parse()

	os.Exit(app.Execute(*configPath, parseUseCases(*only)...))
}

func parseUseCases(list string) []services.UseCase {
	var out []services.UseCase
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, services.UseCase(name))
		}
	}
	return out
}
