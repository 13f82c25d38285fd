package pointrace

import (
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/registry"
)

const (
	FindToChallengeName = "FindToChallenge"
	ChallengeActionName = "PointRaceChallenge"
)

// Register adds the point race customs to reg.
func Register(reg *registry.Registry) error {
	if err := reg.AddRecognition(FindToChallengeName, &FindToChallenge{}); err != nil {
		return err
	}
	return reg.AddAction(ChallengeActionName, &ChallengeAction{})
}
