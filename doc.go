// Package scrollfx binds scroll position to visual effects on a retained 2D
// page rendered with [Ebitengine].
//
// A [Page] owns a tree of [Node] layout boxes and a [Viewport] that scrolls
// over them. An [Engine] reads the viewport, and [Descriptor]s registered
// through a [Scope] drive node properties from it:
//
//   - a scrub ([KindScrub]) maps progress through a scroll window linearly onto
//     a value range on every notification (parallax);
//   - a reveal ([KindReveal]) waits until a boundary is crossed, then plays a
//     timed transition once (via [gween]).
//
// # Quick start
//
//	page := scrollfx.NewPage(1280, 800)
//	engine := scrollfx.New(page.Viewport())
//
//	scope := engine.Open(page.Root())
//	defer scope.Close()
//
//	scope.Add(scrollfx.Descriptor{
//		Target:   scrollfx.RefTo(heroImage),
//		Trigger:  scrollfx.RefTo(hero),
//		Kind:     scrollfx.KindScrub,
//		Property: scrollfx.PropertyOffset,
//		From:     &scrollfx.Values{Offset: 0},
//		To:       &scrollfx.Values{Offset: 120},
//		Start:    "top top",
//		End:      "bottom top",
//	})
//	for _, n := range scope.Select("fade-up") {
//		scope.Add(scrollfx.Descriptor{
//			Target:   scrollfx.RefTo(n),
//			Kind:     scrollfx.KindReveal,
//			Property: scrollfx.PropertyOffset | scrollfx.PropertyOpacity,
//			From:     &scrollfx.Values{Offset: 40, Opacity: 0},
//			Start:    "top 85%",
//			Duration: 1.1,
//			Ease:     "power3.out",
//		})
//	}
//
//	scrollfx.Run(page, engine, scrollfx.RunConfig{Title: "Landing", Width: 1280, Height: 800})
//
// # Markers
//
// Start and End are written "<element edge> <viewport edge>": "top 85%" is met
// when the element's top reaches 85% of the viewport height. Edges are top,
// center, bottom, a percentage, or pixels, with optional "+=" / "-=" offsets.
// Markers measure layout (X, Y, Width, Height), never the visual offset an
// effect writes, so an effect cannot move its own boundaries.
//
// # Teardown
//
// Closing a scope unregisters its descriptors newest first and restores every
// property each one touched to the value it had at registration. Close is
// idempotent. [Engine.WithScope] closes the scope automatically when setup
// fails.
//
// Everything runs on the game loop goroutine; nothing is safe for concurrent use.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scrollfx
