package argon

import "golang.org/x/sync/errgroup"

// fillSliceParallel fills one slice of every lane on at most threads
// goroutines and returns once all lanes are done. Lanes write disjoint
// rows, and during a slice no lane reads another lane's current segment,
// so the result matches a sequential fill.
func fillSliceParallel(ctx *Context, mem *Memory, pass, slice uint32, threads int) {
	var g errgroup.Group
	g.SetLimit(threads)
	for lane := uint32(0); lane < ctx.config.Lanes; lane++ {
		lane := lane
		g.Go(func() error {
			fillSegment(ctx, position{pass: pass, lane: lane, slice: slice}, mem)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic("argon2: internal error: " + err.Error())
	}
}
