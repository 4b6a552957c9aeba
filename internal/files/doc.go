// Package files provides file system operations for the input and output
// directories.
//
// Manager resolves input names inside the fetched directory and artifact
// names inside the processed directory. RequireFile turns an absent input
// into a NOT_FOUND error so every use case reports missing data the same way.
// Inventory lists which expected inputs are present before a batch run.
//
// Example usage:
//
//	manager := files.NewManager(paths, logger)
//
//	path, err := manager.RequireFile("great_gatsby.txt")
//	if errors.IsType(err, errors.ErrTypeNotFound) {
//	    // report and skip the use case
//	}
package files
