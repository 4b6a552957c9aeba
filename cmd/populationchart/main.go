// Command populationchart draws the population trend chart for the configured country.
package main

import (
	"flag"
	"os"

	"dataproc/internal/app"
	"dataproc/internal/services"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $DATAPROC_CONFIG or ./dataproc.yaml)")
	flag.Parse()

	os.Exit(app.Execute(*configPath, services.UseCasePopulationChart))
}
