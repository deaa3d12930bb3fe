package camera

import (
	"runtime"
	"sync"
	"time"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/log"
)

// Framebuffer is a row-major grid of accumulated (not yet gamma-corrected)
// linear colors, one per pixel.
type Framebuffer [][]core.Color

// progress tracks completed work across all worker goroutines as a single
// Σ thread_done / total_work fraction, guarded by a mutex since every
// worker reports into it concurrently.
type progress struct {
	mu        sync.Mutex
	done      int64
	total     int64
	startedAt time.Time
}

func (p *progress) add(n int64) {
	p.mu.Lock()
	p.done += n
	p.mu.Unlock()
}

func (p *progress) fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.total == 0 {
		return 1
	}
	return float64(p.done) / float64(p.total)
}

// Render renders the scene through cam into a freshly allocated
// Framebuffer, fanning work out across threadCount worker goroutines
// (runtime.NumCPU() if threadCount <= 0). Work is divided into disjoint
// row bands so no two workers ever touch the same pixel; each worker owns
// its own core.RNG, seeded from its band index, so rendering the same
// scene with the same thread count always produces the same image. A
// background goroutine logs progress and an ETA every second until all
// bands report done.
func Render(cam *Camera, w World, threadCount int, logger log.Logger) Framebuffer {
	if threadCount <= 0 {
		threadCount = runtime.NumCPU()
	}
	if logger == nil {
		logger = log.Nop{}
	}

	fb := make(Framebuffer, cam.ImageHeight)
	for y := range fb {
		fb[y] = make([]core.Color, cam.ImageWidth)
	}

	prog := &progress{
		total:     int64(cam.ImageHeight) * int64(cam.ImageWidth),
		startedAt: time.Now(),
	}

	stopTicker := make(chan struct{})
	var tickerWg sync.WaitGroup
	tickerWg.Add(1)
	go func() {
		defer tickerWg.Done()
		reportProgress(prog, logger, stopTicker)
	}()

	rowsPerWorker := (cam.ImageHeight + threadCount - 1) / threadCount

	var wg sync.WaitGroup
	for worker := 0; worker < threadCount; worker++ {
		yStart := worker * rowsPerWorker
		yEnd := min(yStart+rowsPerWorker, cam.ImageHeight)
		if yStart >= yEnd {
			continue
		}

		wg.Add(1)
		go func(workerIndex, yStart, yEnd int) {
			defer wg.Done()
			rng := core.NewRNG(workerIndex)
			renderRowBand(cam, w, fb, yStart, yEnd, rng, prog)
		}(worker, yStart, yEnd)
	}
	wg.Wait()

	close(stopTicker)
	tickerWg.Wait()
	logger.Printf("render complete in %v", time.Since(prog.startedAt))

	return fb
}

// renderRowBand renders every pixel in [yStart, yEnd) of cam's image,
// accumulating cam.SamplesPerPixel jittered samples per pixel and
// reporting completed pixels to prog as it goes.
func renderRowBand(cam *Camera, w World, fb Framebuffer, yStart, yEnd int, rng *core.RNG, prog *progress) {
	for y := yStart; y < yEnd; y++ {
		for x := 0; x < cam.ImageWidth; x++ {
			var sum core.Color
			for s := 0; s < cam.SamplesPerPixel; s++ {
				r := cam.Ray(x, y, s, rng)
				sum = sum.Add(Radiance(r, w, cam.Background, cam.MaxDepth, rng))
			}
			fb[y][x] = sum.Divide(float64(cam.SamplesPerPixel))
		}
		prog.add(int64(cam.ImageWidth))
	}
}

func reportProgress(prog *progress, logger log.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frac := prog.fraction()
			if frac <= 0 {
				continue
			}
			elapsed := time.Since(prog.startedAt)
			eta := time.Duration(float64(elapsed) * (1/frac - 1))
			logger.Printf("progress: %.1f%% eta %v", frac*100, eta.Round(time.Second))
		}
	}
}
