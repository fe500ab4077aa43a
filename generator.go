package glyphmask

import "image"
import "runtime"
import "sync"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"

import "github.com/0x0ndra/glyphmask/cache"
import "github.com/0x0ndra/glyphmask/font"
import "github.com/0x0ndra/glyphmask/imgtools"
import "github.com/0x0ndra/glyphmask/mask"

// A handy type alias for sfnt.Font so you don't need to import it
// when already working with glyphmask.
type Font = sfnt.Font

// Progress callbacks receive the number of completed rows and the
// total row count of the grid. With more than one worker, callbacks
// may be invoked from multiple goroutines; keep them cheap and
// concurrent-safe.
type ProgressFunc func(rowsDone, totalRows int)

// A StamperProvider hands out one independent [mask.Stamper] per
// worker goroutine. Mostly a testing and extension seam: generators
// pick a suitable provider on their own from the configured font.
type StamperProvider func() mask.Stamper

// Size of the per-run glyph mask cache used by the default stamper
// provider.
const defaultCacheBytes = 8*1024*1024

// The Generator is the heart of glyphmask and the type around which
// everything else revolves. It takes a source photo and produces the
// final composited image in a single [Generator.Generate]() call;
// everything else is configuration:
//  - [Generator.SetFont]() for the glyph rasterization font, with a
//    built-in bitmap fallback when you have none.
//  - [Generator.SetSeed]() for reproducible randomization.
//  - [Generator.SetWorkers]() for parallel cell processing.
//  - [Generator.SetProgressFunc]() for row progress reporting.
//
// Generators can be reused across runs, but a single generator must
// not be used from multiple goroutines at once.
type Generator struct {
	config       Config
	sfntFont     *sfnt.Font
	provider     StamperProvider
	progressFunc ProgressFunc
	workers      int
	seed         uint64
}

// Creates a new [Generator] with the given configuration. The config
// is only validated when [Generator.Generate]() runs.
func NewGenerator(config Config) *Generator {
	return &Generator{ config: config }
}

// Returns the generator's configuration.
func (self *Generator) Config() Config { return self.config }

// Replaces the generator's configuration.
func (self *Generator) SetConfig(config Config) { self.config = config }

// Sets the font used to rasterize glyphs. A nil font is allowed and
// switches the generator to the built-in bitmap glyph fallback (see
// [mask.BitmapStamper]), trading visual quality for the guarantee
// that generation never fails over missing fonts.
func (self *Generator) SetFont(sfntFont *Font) { self.sfntFont = sfntFont }

// Returns the current font, nil by default.
func (self *Generator) GetFont() *Font { return self.sfntFont }

// Overrides how per-worker stampers are created, taking precedence
// over [Generator.SetFont](). Pass nil to restore the default.
func (self *Generator) SetStamperProvider(provider StamperProvider) {
	self.provider = provider
}

// Sets the seed for the randomization policy. Two runs with the same
// config, source and seed produce byte-identical outputs regardless
// of the worker count. The seed is irrelevant while [Config.Randomize]
// is unset.
func (self *Generator) SetSeed(seed uint64) { self.seed = seed }

// Sets the number of worker goroutines for cell processing. Values
// below one select GOMAXPROCS, which is also the default. Outputs do
// not depend on the worker count.
func (self *Generator) SetWorkers(workers int) { self.workers = workers }

// Sets the progress callback, nil to disable. See [ProgressFunc].
func (self *Generator) SetProgressFunc(progressFunc ProgressFunc) {
	self.progressFunc = progressFunc
}

// Runs the whole pipeline over the given source image: grid planning,
// photo enhancement, per-cell glyph selection and stamping, and the
// final mask compositing. The source is only read; the returned image
// is a fresh buffer owned by the caller.
//
// Generation is all-or-nothing: any cell failure aborts the run with
// an error and no partial output.
func (self *Generator) Generate(src image.Image) (*image.RGBA, error) {
	config := &self.config
	err := config.Validate()
	if err != nil { return nil, err }

	bounds := src.Bounds()
	plan, err := PlanGrid(bounds.Dx(), bounds.Dy(), config.GridWidth, config.GlyphSize)
	if err != nil { return nil, err }

	// enhanced copy of the photo at output resolution, for compositing
	enhanced := imgtools.Enhance(
		imgtools.Resize(src, plan.OutputWidth, plan.OutputHeight),
		config.Brightness, config.Contrast,
	)

	// per-cell stamping into a shared arena
	arena := mask.NewArena(plan.OutputWidth, plan.OutputHeight)
	err = self.renderCells(src, &plan, arena)
	if err != nil { return nil, err }

	return composite(arena.Coverage(), enhanced, config.Background), nil
}

// Stamps every cell of the plan into the arena, fanning rows out over
// the configured number of workers. Cells are independent: workers
// share the source (read-only) but each stamps into its own arena,
// merged at the end, so the only coordination needed is the row
// progress counter and the first error. Workers check for failures
// between rows and bail out cooperatively.
func (self *Generator) renderCells(src image.Image, plan *GridPlan, arena *mask.Arena) error {
	config := &self.config
	ramp := NewRamp(config.Ramp)
	sizes := []int{config.GlyphSize}
	if config.Randomize {
		sizes = font.VariantSizes(config.GlyphSize, config.SizeJitterMin, config.SizeJitterMax)
	}
	policy := newVariationPolicy(config, len(sizes), self.seed)
	provider := self.provider
	if provider == nil { provider = self.defaultStamperProvider() }

	workers := self.workers
	if workers < 1 { workers = runtime.GOMAXPROCS(0) }
	if workers > plan.Rows { workers = plan.Rows }

	var rowsDone atomic.Int32
	var failed atomic.Bool
	var errMutex sync.Mutex
	var firstErr error
	fail := func(err error) {
		failed.Store(true)
		errMutex.Lock()
		if firstErr == nil { firstErr = err }
		errMutex.Unlock()
	}

	// jittered or bold glyphs can spill into neighboring row bands, so
	// workers stamp into private arenas merged once everyone is done
	arenas := make([]*mask.Arena, workers)
	arenas[0] = arena
	for i := 1; i < workers; i++ {
		arenas[i] = mask.NewArena(plan.OutputWidth, plan.OutputHeight)
	}

	var waitGroup sync.WaitGroup
	waitGroup.Add(workers)
	for workerIndex := 0; workerIndex < workers; workerIndex++ {
		go func(startRow int, workerArena *mask.Arena) {
			defer waitGroup.Done()
			stamper := provider()
			for row := startRow; row < plan.Rows; row += workers {
				if failed.Load() { return }
				err := self.renderRow(src, plan, workerArena, stamper, ramp, sizes, &policy, row)
				if err != nil {
					fail(err)
					return
				}
				done := int(rowsDone.Add(1))
				if self.progressFunc != nil {
					self.progressFunc(done, plan.Rows)
				}
			}
		}(workerIndex, arenas[workerIndex])
	}
	waitGroup.Wait()
	if firstErr != nil { return firstErr }
	for i := 1; i < workers; i++ {
		arena.Merge(arenas[i])
	}
	return nil
}

func (self *Generator) renderRow(src image.Image, plan *GridPlan, arena *mask.Arena, stamper mask.Stamper, ramp Ramp, sizes []int, policy *variationPolicy, row int) error {
	config := &self.config
	srcBounds := src.Bounds()
	for col := 0; col < plan.Columns; col++ {
		region := plan.CellRegion(row, col, srcBounds)
		glyph := ramp.Pick(regionLuminance(src, region))
		variation := policy.at(uint64(row*plan.Columns + col))
		size := sizes[variation.variant]

		glyphMask, err := stamper.Mask(glyph, size)
		if err != nil { return err }
		if glyphMask == nil { continue } // no ink in this cell

		baseX := col*config.GlyphSize + variation.dx
		baseY := row*config.GlyphSize + stamper.Ascent(size) + variation.dy
		if config.Bold {
			for _, offsetX := range config.BoldOffsets {
				for _, offsetY := range config.BoldOffsets {
					arena.Stamp(glyphMask, image.Pt(baseX + offsetX, baseY + offsetY))
				}
			}
		} else {
			arena.Stamp(glyphMask, image.Pt(baseX, baseY))
		}
	}
	return nil
}

// The default provider: sfnt stampers sharing a fresh per-run glyph
// mask cache when a font is set, bitmap fallback stampers otherwise.
func (self *Generator) defaultStamperProvider() StamperProvider {
	if self.sfntFont == nil {
		return func() mask.Stamper { return mask.NewBitmapStamper() }
	}
	sfntFont := self.sfntFont
	maskCache := cache.NewCache(defaultCacheBytes)
	return func() mask.Stamper {
		stamper := mask.NewFontStamper(sfntFont)
		stamper.SetCache(maskCache)
		return stamper
	}
}
