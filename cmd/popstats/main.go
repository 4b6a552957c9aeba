// Command popstats writes the maximum, minimum and average rate of change of a JSON observation series.
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

	os.Exit(app.Execute(*configPath, services.UseCasePopulationStatistics))
}
