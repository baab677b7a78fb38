package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/SanoKhan22/CricketAR-sub000/replay"
	"github.com/SanoKhan22/CricketAR-sub000/session"
	"github.com/SanoKhan22/CricketAR-sub000/session/component"
	sevent "github.com/SanoKhan22/CricketAR-sub000/session/event"
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// The demo harness bowls an over at a scripted batter: a synthetic hand feed
// plays a straight drive at every delivery. A real deployment replaces the
// feed with the camera tracking collaborator and the handler with the UI.
func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("unable to load config: %v\n", err)
		return
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		go mgr.Start()
	}

	var s *session.Session
	s = session.New(logger, cfg, scriptedFeed(&s), nil)
	component.Register(s)
	s.SetHandler(&logHandler{log: logger})

	if f, err := os.Create("replay.bin"); err == nil {
		// Closed after the session, which waits for the replay writes.
		defer f.Close()
		s.SetRecorder(replay.NewRecorder(f))
	} else {
		logger.Warnf("replay disabled: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Errorf("replay stream incomplete: %v", err)
		}
	}()

	if err := s.Bowl(); err != nil {
		logger.Errorf("unable to bowl: %v", err)
		return
	}

	const balls = 6
	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()
	for range ticker.C {
		s.Tick()
		if s.Score().Balls() >= balls && s.Delivery().State() != session.DeliveryBatting {
			break
		}
		if s.Score().InningsOver() {
			break
		}
	}

	logger.Infof("innings over: %d/%d off %d balls",
		s.Score().Runs(), s.Score().Wickets(), s.Score().Balls())
}

// scriptedFeed plays a straight drive: the palm shadows the ball and swings
// through it once the delivery gets close to the crease.
func scriptedFeed(s **session.Session) tracking.Feed {
	return tracking.FeedFunc(func() (tracking.Sample, bool) {
		sess := *s
		if sess == nil {
			return tracking.Sample{}, false
		}
		cfg := sess.Config()

		ballPos := sess.Ball().Position()
		palm := mgl32.Vec3{
			ballPos.X()/cfg.Bat.SweepX + 0.5,
			1 - ballPos.Y()/cfg.Bat.SweepY,
			0,
		}

		swinging := sess.Delivery().State() == session.DeliveryBatting &&
			ballPos.Z() < game.CreaseZ+7.3
		vel := mgl32.Vec3{}
		angle := float32(5)
		if swinging {
			vel = mgl32.Vec3{0, -0.2, 1.18}
			angle = 40
		}
		return tracking.SyntheticSample(palm, angle, vel), true
	})
}

// logHandler prints the session's notifications.
type logHandler struct {
	log *logrus.Logger
}

func (h *logHandler) HandleEvent(ev sevent.RemoteEvent) {
	switch e := ev.(type) {
	case *sevent.DeliveryEvent:
		h.log.Infof("delivery: %.1f m/s, %s line, %s length", e.Speed, e.Line, e.Length)
	case *sevent.ContactEvent:
		h.log.Infof("contact: %s off the %s, %s timing, exit %.1f m/s", e.Shot, e.Zone, e.Timing, e.ExitSpeed)
	case *sevent.OutcomeEvent:
		h.log.Infof("outcome: %d runs (%.1f m) %s", e.Runs, e.Distance, e.Message)
	case *sevent.TotalsEvent:
		h.log.Infof("score: %d/%d off %d", e.Runs, e.Wickets, e.Balls)
	case *sevent.GameOverEvent:
		h.log.Infof("%s", game.MessageGameOver)
	}
}
