package service

import (
	"sort"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/service/cache"
)

// BoxPacker defines the interface for packing operations.
type BoxPacker interface {
	// Pack assigns the items to the smallest feasible set of catalog boxes.
	Pack(items []model.Item) (model.PackingResult, error)
	// PackWithCatalog packs against a specific catalog instead of the configured one.
	PackWithCatalog(items []model.Item, catalog model.Catalog) (model.PackingResult, error)
	// InvalidateCache clears the result cache (useful when the catalog changes).
	InvalidateCache()
}

// Option configures a ShelfPackerService.
type Option func(*ShelfPackerService)

// ShelfPackerService implements BoxPacker using a greedy shelf/row/layer
// heuristic. It is not optimal 3D bin packing; it trades optimality for a
// deterministic, fast feasibility check. The computation is pure and owns
// all of its state, so concurrent calls never interfere.
type ShelfPackerService struct {
	catalog model.Catalog
	cache   cache.Cache
}

// NewShelfPackerService creates a new ShelfPackerService with the given options.
func NewShelfPackerService(opts ...Option) *ShelfPackerService {
	s := &ShelfPackerService{
		catalog: model.DefaultCatalog,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCatalog sets a custom box catalog for the packer.
func WithCatalog(catalog model.Catalog) Option {
	return func(s *ShelfPackerService) {
		if len(catalog) > 0 {
			s.catalog = catalog
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *ShelfPackerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *ShelfPackerService) {
		s.cache = c
	}
}

// Pack assigns the items to the smallest feasible set of catalog boxes.
// Results are cached: packing is deterministic, so identical item lists
// always produce identical results.
func (s *ShelfPackerService) Pack(items []model.Item) (model.PackingResult, error) {
	if s.cache != nil {
		if result, ok := s.cache.Get(cacheKey(items)); ok {
			return result, nil
		}
	}

	result, err := s.packCore(items, s.catalog)
	if err != nil {
		return model.PackingResult{}, err
	}

	if s.cache != nil {
		s.cache.Set(cacheKey(items), result)
	}

	return result, nil
}

// PackWithCatalog packs against the given catalog, bypassing the cache.
func (s *ShelfPackerService) PackWithCatalog(items []model.Item, catalog model.Catalog) (model.PackingResult, error) {
	if len(catalog) == 0 {
		catalog = s.catalog
	}
	return s.packCore(items, catalog)
}

// InvalidateCache clears the result cache.
func (s *ShelfPackerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// packCore runs the full packing decision: pre-check against the largest
// box, single-box selection, and the multi-box fallback. Failure is atomic;
// no partial result is ever returned.
func (s *ShelfPackerService) packCore(items []model.Item, catalog model.Catalog) (model.PackingResult, error) {
	// Pre-check: an item that cannot fit the largest box in any
	// orientation can never be packed.
	largest := catalog.Largest()
	for _, it := range items {
		if !fitsSingle(it, largest) {
			return model.PackingResult{}, &UnfittableItemError{
				SKU:    it.SKU,
				Length: it.Length,
				Width:  it.Width,
				Height: it.Height,
				MaxBox: largest,
			}
		}
	}

	if box, ok := findSmallestSingleBox(items, catalog); ok {
		return buildResult([]model.Assignment{{Box: box, Items: items}}), nil
	}

	assignments, err := packIntoBoxes(items, catalog)
	if err != nil {
		return model.PackingResult{}, err
	}

	return buildResult(assignments), nil
}

// buildResult converts assignments into the response shape. Assignments
// arrive sorted ascending by box volume; within each box the SKUs are
// restored to their original request order.
func buildResult(assignments []model.Assignment) model.PackingResult {
	boxes := make([]model.PackedBox, 0, len(assignments))
	for _, a := range assignments {
		ordered := make([]model.Item, len(a.Items))
		copy(ordered, a.Items)
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Position < ordered[j].Position
		})

		skus := make([]string, len(ordered))
		for i, it := range ordered {
			skus[i] = it.SKU
		}

		boxes = append(boxes, model.PackedBox{
			BoxID: a.Box.ID,
			Dimensions: model.BoxDimensions{
				Length: a.Box.Length,
				Width:  a.Box.Width,
				Height: a.Box.Height,
			},
			Items: skus,
		})
	}

	return model.PackingResult{
		Boxes:      boxes,
		TotalBoxes: len(boxes),
	}
}

// orientation is one axis-aligned rotation of an item's dimensions.
type orientation struct {
	l, w, h int
}

// baseArea returns the floor footprint of the orientation.
func (o orientation) baseArea() int {
	return o.l * o.w
}

// orientations enumerates the distinct axis permutations of the item's
// dimensions. Duplicates from equal dimensions are collapsed with a linear
// scan over the fixed enumeration order, keeping the result deterministic.
func orientations(it model.Item) []orientation {
	a, b, c := it.Length, it.Width, it.Height
	all := [6]orientation{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}

	distinct := make([]orientation, 0, 6)
	for _, o := range all {
		seen := false
		for _, d := range distinct {
			if o == d {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, o)
		}
	}
	return distinct
}

// fitsSingle reports whether some orientation of the item fits inside the box.
func fitsSingle(it model.Item, box model.Box) bool {
	for _, o := range orientations(it) {
		if o.l <= box.Length && o.w <= box.Width && o.h <= box.Height {
			return true
		}
	}
	return false
}

// shelfCursor holds the placement state of one shelf packing simulation.
// It is always a local value, re-initialized per trial, so concurrent
// feasibility checks never share state.
type shelfCursor struct {
	x, y, z        int
	rowWidthMax    int // widest item in the current row
	layerHeightMax int // tallest item in the current layer
}

// tryPlace attempts to place one of the orientations at the current cursor.
// On success it advances the cursor and returns true.
func (cur *shelfCursor) tryPlace(ors []orientation, box model.Box) bool {
	for _, o := range ors {
		if cur.x+o.l <= box.Length && cur.y+o.w <= box.Width && cur.z+o.h <= box.Height {
			cur.x += o.l
			if o.w > cur.rowWidthMax {
				cur.rowWidthMax = o.w
			}
			if o.h > cur.layerHeightMax {
				cur.layerHeightMax = o.h
			}
			return true
		}
	}
	return false
}

// newRow starts a new row along the width axis.
func (cur *shelfCursor) newRow() {
	cur.x = 0
	cur.y += cur.rowWidthMax
	cur.rowWidthMax = 0
}

// newLayer starts a new layer along the height axis.
func (cur *shelfCursor) newLayer() {
	cur.x = 0
	cur.y = 0
	cur.z += cur.layerHeightMax
	cur.rowWidthMax = 0
	cur.layerHeightMax = 0
}

// shelfPackFits reports whether the entire item set can be laid out inside
// one box under the greedy shelf heuristic: fill along the length, then open
// a new row along the width, then a new layer along the height. Larger items
// are placed first; per item, orientations with a larger base area are tried
// first so pieces lay flat and use the floor. An empty set is trivially
// feasible. The simulation is stateless across calls.
func shelfPackFits(items []model.Item, box model.Box) bool {
	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		vi, vj := sorted[i].Volume(), sorted[j].Volume()
		if vi != vj {
			return vi > vj
		}
		return sorted[i].MaxDimension() > sorted[j].MaxDimension()
	})

	var cur shelfCursor

	for _, it := range sorted {
		ors := orientations(it)
		sort.Slice(ors, func(i, j int) bool {
			ai, aj := ors[i].baseArea(), ors[j].baseArea()
			if ai != aj {
				return ai > aj
			}
			return ors[i].h > ors[j].h
		})

		if cur.tryPlace(ors, box) {
			continue
		}

		cur.newRow()
		if cur.tryPlace(ors, box) {
			continue
		}

		cur.newLayer()
		if !cur.tryPlace(ors, box) {
			// Does not fit even on a fresh empty layer.
			return false
		}
	}

	return true
}

// findSmallestSingleBox returns the first catalog box (smallest first) that
// holds every item individually and passes the shelf packing check for the
// whole set. For an empty item list the smallest box is returned.
func findSmallestSingleBox(items []model.Item, catalog model.Catalog) (model.Box, bool) {
	for _, box := range catalog {
		if allFitSingle(items, box) && shelfPackFits(items, box) {
			return box, true
		}
	}
	return model.Box{}, false
}

// allFitSingle reports whether every item individually fits the box.
func allFitSingle(items []model.Item, box model.Box) bool {
	for _, it := range items {
		if !fitsSingle(it, box) {
			return false
		}
	}
	return true
}

// packIntoBoxes distributes items across multiple boxes using first-fit
// decreasing: largest items first, each placed into the first open box
// (smallest box volume first) whose extended item list still passes the
// individual fit and shelf packing checks. When no open box accepts the
// item, the smallest catalog box that can hold it alone is opened. Every
// trial insertion re-runs the full shelf simulation from scratch; this is
// quadratic in the item count but preserves exact feasibility semantics.
func packIntoBoxes(items []model.Item, catalog model.Catalog) ([]model.Assignment, error) {
	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Volume() > sorted[j].Volume()
	})

	var assignments []model.Assignment

	for _, it := range sorted {
		// Smaller boxes are filled preferentially.
		sort.SliceStable(assignments, func(i, j int) bool {
			return assignments[i].Box.Volume() < assignments[j].Box.Volume()
		})

		placed := false
		for idx := range assignments {
			trial := append(append([]model.Item{}, assignments[idx].Items...), it)
			if allFitSingle(trial, assignments[idx].Box) && shelfPackFits(trial, assignments[idx].Box) {
				assignments[idx].Items = trial
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		newBox, ok := openSmallestBox(it, catalog)
		if !ok {
			return nil, &UnfittableItemError{
				SKU:    it.SKU,
				Length: it.Length,
				Width:  it.Width,
				Height: it.Height,
				MaxBox: catalog.Largest(),
			}
		}

		assignments = append(assignments, model.Assignment{
			Box:   newBox,
			Items: []model.Item{it},
		})
	}

	// Final sort for stable output, smallest boxes first.
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].Box.Volume() < assignments[j].Box.Volume()
	})

	return assignments, nil
}

// openSmallestBox finds the smallest catalog box that holds the item alone.
func openSmallestBox(it model.Item, catalog model.Catalog) (model.Box, bool) {
	for _, box := range catalog {
		if fitsSingle(it, box) && shelfPackFits([]model.Item{it}, box) {
			return box, true
		}
	}
	return model.Box{}, false
}
