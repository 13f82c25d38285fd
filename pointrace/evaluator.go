package pointrace

import (
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// Candidate is one opponent row. Candidates are evaluated in slice order.
type Candidate struct {
	Index int
	ROI   maa.Rect
}

// Selection is the evaluator's verdict. OK is false when nothing should be
// challenged this cycle.
type Selection struct {
	Index int
	Box   maa.Rect
	OK    bool
}

var noSelection = Selection{}

// Evaluator picks the first candidate not stronger than the own team.
type Evaluator struct {
	Reader  *MetricReader
	Locator *ActionLocator
}

// NewEvaluator wires a reader and a locator on the same recognizer.
func NewEvaluator(reco Recognizer, p Params) *Evaluator {
	return &Evaluator{
		Reader: &MetricReader{
			Reco:  reco,
			Entry: p.MetricEntry,
			Dump:  NewDumper(p.Debug, p.OutputDir),
		},
		Locator: &ActionLocator{
			Reco:  reco,
			Entry: p.ButtonEntry,
		},
	}
}

// Select reads the reference ROI once, then walks candidates in order. The
// first unreadable candidate aborts the walk: a partially read board is not
// used for a decision.
func (e *Evaluator) Select(img image.Image, reference maa.Rect, candidates []Candidate) Selection {
	log.Info().Msg("[PointRace]尝试读取我方小队战力...")
	team := e.Reader.Read(img, reference)
	if !team.OK {
		log.Warn().Msg("[PointRace]我方战力不可用，放弃选择")
		return noSelection
	}

	log.Info().Int("candidates", len(candidates)).Msg("[PointRace]尝试读取敌方小队战力...")
	for _, c := range candidates {
		enemy := e.Reader.Read(img, c.ROI)
		if !enemy.OK {
			log.Warn().Int("enemy", c.Index+1).Msg("[PointRace]无法读取到敌队战力！")
			return noSelection
		}

		if enemy.Value > team.Value {
			log.Warn().
				Int("enemy", c.Index+1).
				Str("enemy_power", inWan(enemy.Value)).
				Str("team_power", inWan(team.Value)).
				Msg("[PointRace]敌队战力大于小队战力，跳过")
			continue
		}

		log.Info().
			Int("enemy", c.Index+1).
			Str("enemy_power", inWan(enemy.Value)).
			Str("team_power", inWan(team.Value)).
			Msg("[PointRace]敌队战力不高于小队战力，可以挑战")

		box, ok := e.Locator.Locate(img, c.Index)
		if !ok {
			log.Error().Int("enemy", c.Index+1).Msg("[PointRace]无法找到敌队的挑战按钮！")
			return noSelection
		}
		return Selection{Index: c.Index, Box: box, OK: true}
	}

	log.Info().Msg("[PointRace]没有可以挑战的对象")
	return noSelection
}
