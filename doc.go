// Package notia is the Composition Root for the notia photo annotation store.
//
// It wires the core Store (pkg/core) to the JSON file adapter
// (pkg/adapters/fs) and configures photo discovery (pkg/discovery) from
// defaults, an optional YAML config file and functional options.
//
// Notes and tags are kept in memory keyed by photo path. Every mutation
// rewrites the whole notes file (~/.notia_notes.json by default). Load and
// save problems never surface as errors: a missing or corrupt file means an
// empty store, a failed write leaves memory as the source of truth.
//
// Usage:
//
//	app, err := notia.Open(notia.WithLogger(logger))
//	if err != nil {
//		return err // only a broken --config file gets here
//	}
//
//	for _, photo := range app.Scanner.Scan() {
//		if a, ok := app.Store.GetNote(photo); ok {
//			fmt.Println(photo, a.Note, a.Tags)
//		}
//	}
//
//	app.Store.AddOrUpdateNote(ctx, photo, "great sunset")
//	app.Store.AddTag(ctx, photo, "sky")
package notia
