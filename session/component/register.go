package component

import "github.com/SanoKhan22/CricketAR-sub000/session"

// Register registers the standard components for the given session.
func Register(s *session.Session) {
	s.SetScore(NewMatchScoreComponent(s))
	s.SetBat(NewTrackedBatComponent(s))
	s.SetSwing(NewPhaseSwingComponent(s))
	s.SetDelivery(NewTrackedDeliveryComponent(s))
}
