package component

import (
	"github.com/SanoKhan22/CricketAR-sub000/batting"
	"github.com/SanoKhan22/CricketAR-sub000/cerror"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/SanoKhan22/CricketAR-sub000/replay"
	"github.com/SanoKhan22/CricketAR-sub000/session"
	"github.com/SanoKhan22/CricketAR-sub000/session/event"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

// Delivery lines and lengths.
const (
	LineOff    = "off"
	LineMiddle = "middle"
	LineLeg    = "leg"

	LengthFull  = "full"
	LengthGood  = "good"
	LengthShort = "short"
)

// TrackedDeliveryComponent runs one delivery at a time from bowl release to a
// scored or dismissed outcome. Contact is gated on the swing machine's
// downswing; the hasHit latch and the terminal state guard make the outcome
// computation fire exactly once per delivery.
type TrackedDeliveryComponent struct {
	mSession *session.Session

	state  session.DeliveryState
	params session.DeliveryParams

	hasHit      bool
	bounceAtHit int
	shot        batting.Shot
	timing      batting.TimingResult
}

func NewTrackedDeliveryComponent(s *session.Session) *TrackedDeliveryComponent {
	return &TrackedDeliveryComponent{
		mSession: s,
		state:    session.DeliveryIdle,
	}
}

// Bowl draws bowl parameters and starts the delivery. Only legal from idle
// with the innings still open.
func (c *TrackedDeliveryComponent) Bowl() error {
	if err := c.canBowl(); err != nil {
		return err
	}
	c.start(c.draw())
	return nil
}

// BowlWith starts a delivery with explicit parameters instead of drawn ones.
func (c *TrackedDeliveryComponent) BowlWith(params session.DeliveryParams) error {
	if err := c.canBowl(); err != nil {
		return err
	}
	c.start(params)
	return nil
}

func (c *TrackedDeliveryComponent) canBowl() error {
	if c.mSession.Score().InningsOver() {
		return cerror.New(game.ErrorInningsOver)
	}
	if c.state != session.DeliveryIdle {
		return cerror.New(game.ErrorDeliveryInProgress)
	}
	return nil
}

// draw picks this delivery's speed, line and length from the configured maps
// using the session's seeded random source.
func (c *TrackedDeliveryComponent) draw() session.DeliveryParams {
	d := c.mSession.Config().Delivery
	rng := c.mSession.Rng()

	minSpeed, maxSpeed := d.SpinMinSpeed, d.SpinMaxSpeed
	if rng.Intn(2) == 0 {
		minSpeed, maxSpeed = d.PaceMinSpeed, d.PaceMaxSpeed
	}

	return session.DeliveryParams{
		Speed:  minSpeed + rng.Float32()*(maxSpeed-minSpeed),
		Line:   []string{LineOff, LineMiddle, LineLeg}[rng.Intn(3)],
		Length: []string{LengthFull, LengthGood, LengthShort}[rng.Intn(3)],
	}
}

func (c *TrackedDeliveryComponent) start(params session.DeliveryParams) {
	c.params = params
	c.hasHit = false
	c.bounceAtHit = 0
	c.shot = batting.Shot{}
	c.timing = batting.TimingResult{}
	c.state = session.DeliveryBowling

	c.mSession.Swing().Reset()
	c.mSession.Bat().Reset()

	c.mSession.QueueEvent(event.NewDeliveryEvent(params.Speed, params.Line, params.Length))
	c.mSession.Record(replay.NewDeliveryEvent(
		c.mSession.CurrentTick(), params.Speed, params.Line, params.Length))

	c.mSession.ScheduleAfter(c.mSession.Config().Delivery.ReleaseDelayTicks, c.release)
}

// release launches the ball once the release delay has elapsed. A stale
// callback after a reset finds the state changed and does nothing.
func (c *TrackedDeliveryComponent) release() {
	if c.state != session.DeliveryBowling {
		return
	}

	d := c.mSession.Config().Delivery

	lineX := float32(0)
	switch c.params.Line {
	case LineOff:
		lineX = d.OffLineX
	case LineLeg:
		lineX = d.LegLineX
	}

	lengthZ := d.GoodLengthZ
	switch c.params.Length {
	case LengthFull:
		lengthZ = d.FullLengthZ
	case LengthShort:
		lengthZ = d.ShortLengthZ
	}

	// Vertical speed chosen so the ball pitches at the length target.
	t := (game.ReleaseZ - lengthZ) / c.params.Speed
	vy := (0.5*game.Gravity*t*t - game.ReleaseHeight) / t

	c.mSession.Ball().Reset(
		mgl32.Vec3{lineX, game.ReleaseHeight, game.ReleaseZ},
		mgl32.Vec3{0, vy, -c.params.Speed},
	)
	c.state = session.DeliveryBatting
}

// Update runs the contact and outcome checks for a live delivery.
func (c *TrackedDeliveryComponent) Update() {
	if c.state != session.DeliveryBatting {
		return
	}
	c.checkContact()
	if c.state == session.DeliveryBatting {
		c.checkOutcome()
	}
}

// checkContact performs the swept bat-ball intersection and, on contact, runs
// the zone → timing → shot → exit velocity pipeline.
func (c *TrackedDeliveryComponent) checkContact() {
	if c.hasHit {
		return
	}
	swing := c.mSession.Swing()
	if !swing.ReadyToHit() {
		return
	}

	cfg := c.mSession.Config()
	ball := c.mSession.Ball()
	pose := c.mSession.Bat().Pose()

	blade := game.AABBFromDimensions(cfg.Bat.Width, cfg.Bat.Length, cfg.Bat.Depth).
		Translate(pose.Position).
		Grow(cfg.Bat.ContactReach)

	// The swept segment is one tick of travel long, so a ball farther from
	// the blade than that cannot intercept it.
	if game.AABBVectorDistance(blade, ball.Position()) > ball.Velocity().Len()*c.mSession.Dt() {
		return
	}
	res, ok := trace.BBoxIntercept(blade, ball.LastPosition(), ball.Position())
	if !ok {
		return
	}
	contactPos := res.Position()

	zone := batting.ResolveZone(contactPos, pose.Position, cfg.Bat, cfg.Zones)
	if zone.NoShot() {
		// Off the handle: no shot is played and the delivery is over.
		c.hasHit = true
		swing.RegisterContact()
		c.mSession.QueueEvent(event.NewContactEvent(
			string(zone.Vertical), "", "No Shot", 0, c.backliftQuality(), zone.Description))
		c.finish(0, false, game.Vec3HzDist(ball.Position()), "No Shot", "", game.MessageNoShot)
		return
	}

	shot := batting.SelectShot(c.mSession.Bat().HandVelocity(), cfg.Shots)
	if shot.Miss() {
		// Too slow to count as a swing; the ball continues untouched.
		return
	}

	spatial := batting.ClassifySpatial(contactPos.Z()-pose.Position.Z(), cfg.Timing)
	temporal := batting.ClassifyTemporal(swing.DownswingSeconds(), cfg.Timing)
	timing := batting.CombineTiming(spatial, temporal, cfg.Timing)

	dir, exitSpeed := batting.ResolveExit(batting.ExitInput{
		BatSpeed:  c.mSession.Bat().Speed(),
		BowlSpeed: c.params.Speed,
		Zone:      zone,
		Timing:    timing,
		Shot:      shot,
		HandVel:   c.mSession.Bat().HandVelocity(),
	}, cfg.Exit)

	ball.ApplyImpulse(dir, exitSpeed)

	c.hasHit = true
	c.bounceAtHit = ball.BounceCount()
	c.shot = shot
	c.timing = timing
	swing.RegisterContact()

	zoneName := string(zone.Vertical) + "/" + string(zone.Horizontal)
	reported := game.Round32(exitSpeed, 2)
	c.mSession.QueueEvent(event.NewContactEvent(
		zoneName, string(timing.Quality), shot.Name, reported, c.backliftQuality(), zone.Description))
	c.mSession.Record(replay.NewContactEvent(
		c.mSession.CurrentTick(), zoneName, shot.Name, string(timing.Quality), reported))
}

// checkOutcome resolves boundary, stopped-ball, missed-ball and wicket
// conditions. State guards keep the outcome from firing twice even if several
// conditions become true in the same tick.
func (c *TrackedDeliveryComponent) checkOutcome() {
	cfg := c.mSession.Config()
	ball := c.mSession.Ball()
	pos := ball.Position()

	if !c.hasHit {
		stumps := game.StumpsBox().Grow(game.BallRadius)
		if _, hit := trace.BBoxIntercept(stumps, ball.LastPosition(), pos); hit {
			c.dismiss()
			return
		}
		if pos.Z() < game.MissZ || ball.Stopped(cfg.Scoring.StopSpeed) {
			c.finish(0, false, game.Vec3HzDist(pos), batting.ShotMiss, "", game.MessageMiss)
		}
		return
	}

	dist := game.Vec3HzDist(pos)
	bands := cfg.Scoring.Bands
	if dist >= bands.Boundary {
		bounced := ball.BounceCount() > c.bounceAtHit
		c.score(dist, bounced)
		return
	}
	if ball.Stopped(cfg.Scoring.StopSpeed) {
		c.score(dist, true)
	}
}

// score banding for a hit delivery.
func (c *TrackedDeliveryComponent) score(dist float32, bounced bool) {
	bands := c.mSession.Config().Scoring.Bands
	runs := game.CalculateRuns(dist, bounced, c.shot.Defensive, bands)

	msg := game.MessageDotBall
	switch {
	case runs == 6:
		msg = game.MessageSix
	case runs == 4:
		msg = game.MessageFour
	case runs > 0:
		msg = ""
	}
	c.finish(runs, false, dist, c.shot.Name, string(c.timing.Quality), msg)
}

func (c *TrackedDeliveryComponent) dismiss() {
	c.finish(0, true, 0, "", "", game.MessageBowled)
}

// finish records the outcome exactly once and schedules the next delivery.
func (c *TrackedDeliveryComponent) finish(runs int, dismissed bool, dist float32, shotName, timing, msg string) {
	if c.state != session.DeliveryBatting && c.state != session.DeliveryBowling {
		return
	}

	// Notifications carry the carry distance at display precision.
	dist = game.Round32(dist, 1)

	score := c.mSession.Score()
	if dismissed {
		c.state = session.DeliveryDismissed
		score.AddWicket()
		c.mSession.QueueEvent(&event.WicketEvent{})
	} else {
		c.state = session.DeliveryComplete
		score.AddRuns(runs)
	}

	c.mSession.QueueEvent(event.NewOutcomeEvent(runs, dismissed, dist, shotName, timing, msg))
	c.mSession.QueueEvent(event.NewTotalsEvent(
		score.Runs(), score.Balls(), score.Wickets(), score.HistoryMarks()))
	c.mSession.Record(replay.NewOutcomeEvent(
		c.mSession.CurrentTick(), runs, dismissed, dist, shotName))
	c.mSession.FlushReplay()

	if score.InningsOver() {
		c.mSession.QueueEvent(event.NewGameOverEvent(score.Runs(), score.Balls(), score.Wickets()))
		return
	}

	if c.mSession.Config().Delivery.AutoNext {
		c.mSession.ScheduleAfter(c.mSession.Config().Delivery.NextDelayTicks, func() {
			// Only auto-bowl if no one started a fresh delivery meanwhile.
			if c.state != session.DeliveryComplete && c.state != session.DeliveryDismissed {
				return
			}
			c.state = session.DeliveryIdle
			if err := c.Bowl(); err != nil {
				c.mSession.Log().Warnf("auto bowl failed: %v", err)
			}
		})
	}
}

// State returns the delivery lifecycle state.
func (c *TrackedDeliveryComponent) State() session.DeliveryState {
	return c.state
}

// BallLive reports whether the ball is in play and should be stepped.
func (c *TrackedDeliveryComponent) BallLive() bool {
	return c.state == session.DeliveryBatting
}

// Params returns the current delivery's bowl parameters.
func (c *TrackedDeliveryComponent) Params() session.DeliveryParams {
	return c.params
}

// HasHit reports whether a contact has been registered this delivery.
func (c *TrackedDeliveryComponent) HasHit() bool {
	return c.hasHit
}

// Reset aborts any live delivery and returns to idle.
func (c *TrackedDeliveryComponent) Reset() {
	c.state = session.DeliveryIdle
	c.hasHit = false
	c.bounceAtHit = 0
	c.shot = batting.Shot{}
	c.timing = batting.TimingResult{}
}

func (c *TrackedDeliveryComponent) backliftQuality() string {
	if c.mSession.Swing().BackliftTicks() >= c.mSession.Config().Swing.FullBackliftTicks {
		return "full"
	}
	return "rushed"
}
