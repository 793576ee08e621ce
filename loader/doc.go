// Package loader loads Vision sensor logs into signal records.
//
// A single-file load reads the reference series ts_group_0 to build a uniform
// time axis, resolves a Selector against the container's dataset names and
// resamples every selected signal onto that axis with nearest-neighbor
// interpolation. A multi-file load runs the single-file load for each existing
// path and concatenates the per-file arrays in input order.
//
//	l, err := loader.New(loader.WithStep(0.5), loader.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	merged, err := l.LoadMany(ctx, paths, loader.Names("temperature", "pressure"))
package loader
