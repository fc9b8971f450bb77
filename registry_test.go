package scrollfx

import (
	"math"
	"testing"
)

const testViewportH = 600

func scrollAt(y float64) ScrollState {
	return ScrollState{ScrollY: y, ViewportWidth: 1280, ViewportHeight: testViewportH}
}

// heroFixture is an 800px hero at the top of the page with an image inside it.
func heroFixture() (hero, image *Node) {
	root := NewContainer("root")
	hero = NewContainer("hero")
	hero.SetSize(1280, 800)
	image = NewBox("image", 1280, 920, ColorWhite)
	hero.AddChild(image)
	root.AddChild(hero)
	return hero, image
}

func parallax(hero, image *Node) Descriptor {
	return Descriptor{
		Name:     "parallax",
		Target:   RefTo(image),
		Trigger:  RefTo(hero),
		Kind:     KindScrub,
		Property: PropertyOffset,
		From:     &Values{Offset: 0},
		To:       &Values{Offset: 120},
		Start:    "top top",
		End:      "bottom top",
	}
}

// fadeUp is a block at y=1000 revealed when its top reaches 85% of the viewport
// (scroll 490).
func fadeUp() (*Node, Descriptor) {
	n := NewBox("block", 300, 100, ColorWhite)
	n.SetPosition(0, 1000)
	return n, Descriptor{
		Name:     "fade-up",
		Target:   RefTo(n),
		Kind:     KindReveal,
		Property: PropertyOffset | PropertyOpacity,
		From:     &Values{Offset: 40, Opacity: 0},
		Start:    "top 85%",
		Duration: 1,
		Ease:     "none",
	}
}

func TestScrubExampleValues(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	h := r.Register(parallax(hero, image))
	if !h.Valid() {
		t.Fatal("registration rejected")
	}

	cases := []struct{ scroll, want float64 }{
		{400, 60},
		{1000, 120},
		{-50, 0},
		{0, 0},
		{800, 120},
	}
	for _, c := range cases {
		r.Notify(scrollAt(c.scroll))
		if image.OffsetY != c.want {
			t.Errorf("scroll %v: OffsetY = %v, want %v", c.scroll, image.OffsetY, c.want)
		}
	}
	if s, _ := r.State(h); s != StateActive {
		t.Errorf("state = %v, want active", s)
	}
}

func TestScrubLinearInsideWindow(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	h := r.Register(parallax(hero, image))

	prev := -1.0
	for s := 0.0; s <= 800; s += 50 {
		r.Notify(scrollAt(s))
		want := 120 * s / 800
		if math.Abs(image.OffsetY-want) > epsilon {
			t.Errorf("scroll %v: OffsetY = %v, want %v", s, image.OffsetY, want)
		}
		if image.OffsetY < prev {
			t.Errorf("scroll %v: value decreased", s)
		}
		prev = image.OffsetY
		if p, _ := r.Progress(h); math.Abs(p-s/800) > epsilon {
			t.Errorf("scroll %v: progress = %v", s, p)
		}
	}
}

func TestRegisterMissingTargetIsNoOp(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()

	d := parallax(hero, image)
	d.Target = nil
	if h := r.Register(d); h.Valid() {
		t.Error("nil target should not register")
	}
	d.Target = NewRef()
	if h := r.Register(d); h.Valid() {
		t.Error("unattached target should not register")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}

	r.Notify(scrollAt(400))
	if image.OffsetY != 0 {
		t.Error("skipped descriptor must not receive notifications")
	}
}

func TestRegisterRejectsNonFiniteMarker(t *testing.T) {
	hero, image := heroFixture()
	d := parallax(hero, image)
	d.Start = "NaN"
	d.End = "800"
	r := NewRegistry()
	if h := r.Register(d); h.Valid() {
		t.Fatal("NaN marker was registered")
	}
	r.Notify(scrollAt(400))
	if image.OffsetY != 0 {
		t.Errorf("OffsetY = %v, want untouched 0", image.OffsetY)
	}
}

func TestRegisterInvalidKindIsNoOp(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	d := parallax(hero, image)
	d.Kind = Kind(42)
	if h := r.Register(d); h.Valid() {
		t.Error("unknown kind should be rejected, not defaulted")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRevealRendersFromStateImmediately(t *testing.T) {
	n, d := fadeUp()
	r := NewRegistry()
	h := r.Register(d)
	if n.OffsetY != 40 || n.Alpha != 0 {
		t.Errorf("after register: OffsetY=%v Alpha=%v, want 40 and 0", n.OffsetY, n.Alpha)
	}
	if s, _ := r.State(h); s != StatePending {
		t.Errorf("state = %v, want pending", s)
	}
}

func TestRevealFiresAtBoundary(t *testing.T) {
	n, d := fadeUp()
	r := NewRegistry()
	h := r.Register(d)

	r.Notify(scrollAt(489))
	if s, _ := r.State(h); s != StatePending {
		t.Fatalf("state before boundary = %v, want pending", s)
	}
	r.Notify(scrollAt(490))
	if s, _ := r.State(h); s != StateFired {
		t.Fatalf("state at boundary = %v, want fired", s)
	}

	// Time-based, not scroll-coupled: halfway through the duration.
	if running := r.Advance(0.5); running != 1 {
		t.Errorf("running = %d, want 1", running)
	}
	if math.Abs(n.OffsetY-20) > 0.01 || math.Abs(n.Alpha-0.5) > 0.01 {
		t.Errorf("halfway: OffsetY=%v Alpha=%v, want ~20 and ~0.5", n.OffsetY, n.Alpha)
	}
	r.Advance(0.5)
	if math.Abs(n.OffsetY) > 0.01 || math.Abs(n.Alpha-1) > 0.01 {
		t.Errorf("done: OffsetY=%v Alpha=%v, want ~0 and ~1", n.OffsetY, n.Alpha)
	}
	if running := r.Advance(0.1); running != 0 {
		t.Errorf("running after completion = %d, want 0", running)
	}
}

func TestRevealFiresOnce(t *testing.T) {
	n, d := fadeUp()
	r := NewRegistry()
	h := r.Register(d)

	fired := 0
	last := StatePending
	for _, y := range []float64{0, 600, 0, 600, 100, 900} {
		r.Notify(scrollAt(y))
		s, _ := r.State(h)
		if s == StateFired && last != StateFired {
			fired++
		}
		last = s
		r.Advance(0.25)
	}
	if fired != 1 {
		t.Errorf("fired transitions = %d, want 1", fired)
	}
	// Scrolling back and forth never restarts the transition.
	r.Advance(1)
	if math.Abs(n.Alpha-1) > 0.01 {
		t.Errorf("Alpha = %v, want ~1", n.Alpha)
	}
}

func TestRevealToOnlyAnimatesFromBaseline(t *testing.T) {
	n := NewBox("n", 10, 10, ColorWhite)
	n.Alpha = 0.2
	r := NewRegistry()
	r.Register(Descriptor{
		Target:   RefTo(n),
		Kind:     KindReveal,
		Property: PropertyOpacity,
		To:       &Values{Opacity: 1},
		Start:    "0",
		Duration: 1,
		Ease:     "linear",
	})
	if n.Alpha != 0.2 {
		t.Errorf("to-only reveal must not render on register, Alpha = %v", n.Alpha)
	}
	r.Notify(scrollAt(0))
	r.Advance(0.5)
	if math.Abs(n.Alpha-0.6) > 0.01 {
		t.Errorf("Alpha = %v, want ~0.6", n.Alpha)
	}
}

func TestUnregisterRevertsAndIsIdempotent(t *testing.T) {
	hero, image := heroFixture()
	image.OffsetY = 7 // baseline
	r := NewRegistry()
	calls := 0
	r.OnUnregister = func(Handle) { calls++ }

	h := r.Register(parallax(hero, image))
	r.Notify(scrollAt(400))
	if image.OffsetY != 60 {
		t.Fatalf("OffsetY = %v, want 60", image.OffsetY)
	}

	r.Unregister(h)
	if image.OffsetY != 7 {
		t.Errorf("after unregister OffsetY = %v, want baseline 7", image.OffsetY)
	}
	image.OffsetY = 33
	r.Unregister(h)
	r.Unregister(0)
	if image.OffsetY != 33 {
		t.Error("second unregister must not revert again")
	}
	if calls != 1 {
		t.Errorf("OnUnregister calls = %d, want 1", calls)
	}
	if _, ok := r.State(h); ok {
		t.Error("unregistered handle should not report state")
	}
}

func TestUnregisterStopsRunningReveal(t *testing.T) {
	n, d := fadeUp()
	r := NewRegistry()
	h := r.Register(d)
	r.Notify(scrollAt(600))
	r.Advance(0.3)

	r.Unregister(h)
	if n.OffsetY != 0 || n.Alpha != 1 {
		t.Errorf("baseline not restored: OffsetY=%v Alpha=%v", n.OffsetY, n.Alpha)
	}
	r.Advance(0.3)
	if n.OffsetY != 0 || n.Alpha != 1 {
		t.Error("tween kept running after unregister")
	}
}

func TestUnregisterUntouchedTargetLeavesItAlone(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	h := r.Register(parallax(hero, image))
	image.OffsetY = 99 // written by someone else before any notification
	r.Unregister(h)
	if image.OffsetY != 99 {
		t.Errorf("OffsetY = %v, want untouched 99", image.OffsetY)
	}
}

func TestZeroLengthWindowSnapsOnce(t *testing.T) {
	hero, image := heroFixture()
	d := parallax(hero, image)
	d.End = "top top"
	r := NewRegistry()
	h := r.Register(d)

	r.Notify(scrollAt(-10))
	if image.OffsetY != 0 {
		t.Errorf("before boundary OffsetY = %v, want 0", image.OffsetY)
	}
	r.Notify(scrollAt(0))
	if image.OffsetY != 120 {
		t.Errorf("at boundary OffsetY = %v, want 120", image.OffsetY)
	}
	if s, _ := r.State(h); s != StateFired {
		t.Errorf("state = %v, want fired", s)
	}
	r.Notify(scrollAt(-10))
	if image.OffsetY != 120 {
		t.Error("fired zero-length window must not re-evaluate")
	}
}

func TestCollapsedWindowRecoversAfterLayout(t *testing.T) {
	hero := NewContainer("hero") // not laid out yet: zero height
	image := NewBox("image", 1280, 920, ColorWhite)
	hero.AddChild(image)
	r := NewRegistry()
	h := r.Register(parallax(hero, image))

	r.Notify(scrollAt(10))
	if image.OffsetY != 120 {
		t.Errorf("collapsed window OffsetY = %v, want snapped 120", image.OffsetY)
	}
	if s, _ := r.State(h); s != StateActive {
		t.Fatalf("state = %v, want active", s)
	}

	hero.SetSize(1280, 800)
	r.Notify(scrollAt(400))
	if image.OffsetY != 60 {
		t.Errorf("after layout OffsetY = %v, want 60", image.OffsetY)
	}
}

func TestNotifyRegistrationOrderLastWins(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	r.Register(parallax(hero, image))
	second := parallax(hero, image)
	second.To = &Values{Offset: -120}
	r.Register(second)

	r.Notify(scrollAt(400))
	if image.OffsetY != -60 {
		t.Errorf("OffsetY = %v, want -60 from the later registration", image.OffsetY)
	}
}

func TestNotifySkipsDisposedTargets(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	r.Register(parallax(hero, image))
	image.Dispose()
	r.Notify(scrollAt(400)) // must not panic or write
	if image.OffsetY != 0 {
		t.Errorf("disposed target written: OffsetY = %v", image.OffsetY)
	}
}

func TestTriggerDefaultsToTarget(t *testing.T) {
	n, _ := fadeUp()
	r := NewRegistry()
	r.Register(Descriptor{
		Target:   RefTo(n),
		Kind:     KindScrub,
		Property: PropertyOpacity,
		From:     &Values{Opacity: 0},
		To:       &Values{Opacity: 1},
		Start:    "top bottom", // 400
		End:      "top top",    // 1000
	})
	r.Notify(scrollAt(700))
	if math.Abs(n.Alpha-0.5) > epsilon {
		t.Errorf("Alpha = %v, want 0.5", n.Alpha)
	}
}

func TestNotifyTracksRelayout(t *testing.T) {
	hero, image := heroFixture()
	r := NewRegistry()
	r.Register(parallax(hero, image))

	hero.SetSize(1280, 400)
	r.Notify(scrollAt(200))
	if image.OffsetY != 60 {
		t.Errorf("OffsetY = %v, want 60 for a 400px hero", image.OffsetY)
	}
}
