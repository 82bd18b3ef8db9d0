// Package detect partitions a catalog into installed and missing items.
package detect

import (
	"context"

	"devsetup/internal/catalog"
	"devsetup/internal/logger"
	"devsetup/internal/runner"
)

// Found is an installed item and the version its check printed.
type Found struct {
	Item    catalog.Item
	Version string
}

// Partition splits a catalog; both halves keep catalog order.
type Partition struct {
	Present []Found
	Missing []catalog.Item
}

// Detect runs every item's check command in order. An item is present only
// when its check succeeds with non-empty output; a failing, erroring or
// silent check all count as missing.
func Detect(ctx context.Context, r runner.Runner, items []catalog.Item) Partition {
	var p Partition
	for _, item := range items {
		res := r.Run(ctx, item.CheckCommand)
		if res.OK() && res.Output != "" {
			logger.Info("[INFO] ✅ %s is already installed (%s). Skipping.\n", item.Name, res.Output)
			p.Present = append(p.Present, Found{Item: item, Version: res.Output})
			continue
		}
		logger.Info("[INFO] %s is not installed.\n", item.Name)
		p.Missing = append(p.Missing, item)
	}
	return p
}

// FindMissing returns the items whose check did not prove them installed.
func FindMissing(ctx context.Context, r runner.Runner, items []catalog.Item) []catalog.Item {
	return Detect(ctx, r, items).Missing
}
