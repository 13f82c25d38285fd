package pointrace

import (
	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// ChallengeAction taps the box produced by FindToChallenge. It bails out
// early once the user has asked the task to stop.
type ChallengeAction struct{}

type stopper interface {
	Stopping() bool
}

func (a *ChallengeAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().
		Str("task", arg.CurrentTaskName).
		Ints("box", rectSlice(arg.Box)).
		Msg("[PointRace]ChallengeAction is running")

	tasker := ctx.GetTasker()
	x, y, ok := tapTarget(tasker, arg.Box)
	if !ok {
		return false
	}
	tasker.GetController().PostClick(x, y).Wait()
	return true
}

// tapTarget returns where to tap, or false when the task is stopping or the
// box is empty.
func tapTarget(s stopper, box maa.Rect) (x, y int32, ok bool) {
	if s.Stopping() {
		log.Info().Msg("[PointRace]Task is stopping, exiting ChallengeAction early")
		return 0, 0, false
	}
	x, y, ok = center(box)
	if !ok {
		log.Warn().Ints("box", rectSlice(box)).Msg("[PointRace]empty box, nothing to tap")
	}
	return x, y, ok
}

func center(box maa.Rect) (x, y int32, ok bool) {
	if box.Width() <= 0 || box.Height() <= 0 {
		return 0, 0, false
	}
	return int32(box.X() + box.Width()/2), int32(box.Y() + box.Height()/2), true
}
