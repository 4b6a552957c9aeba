// Package shared holds helpers used across the dataproc packages.
//
// The testutil subpackage provides:
//
//	- temp directory layouts with the default fetched and processed dirs
//	- input fixtures for the four use cases (population CSV, census
//	  workbook, observation JSON, novel text)
//	- a capturing slog handler with assertions on messages and attributes
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    paths := testutil.NewPaths(t)
//	    testutil.WriteInputs(t, paths)
//	    logger, logs := testutil.NewTestLogger(t)
//	    // ...
//	    testutil.AssertLogContains(t, logs, slog.LevelInfo, "Statistics saved")
//	}
//
// Nothing here may be imported by non-test code.
package shared
