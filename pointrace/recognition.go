package pointrace

import (
	"encoding/json"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// FindToChallenge looks for an opponent the own team can beat in the point race.
// On success the box is the opponent's challenge button and the detail carries
// the opponent row index.
type FindToChallenge struct{}

type challengeDetail struct {
	Index int `json:"index"`
}

func (r *FindToChallenge) Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	params, err := ParseParams(arg.CustomRecognitionParam)
	if err != nil {
		log.Error().Err(err).Str("param", arg.CustomRecognitionParam).Msg("[PointRace]参数解析失败")
		return nil, false
	}
	if arg.Img == nil {
		log.Error().Msg("[PointRace]pipeline 传入的截图为空")
		return nil, false
	}

	return selectionResult(NewEvaluator(ContextRecognizer{Ctx: ctx}, params).
		Select(arg.Img, params.Reference(), params.Candidates()))
}

func selectionResult(sel Selection) (*maa.CustomRecognitionResult, bool) {
	if !sel.OK {
		return nil, false
	}
	detail, _ := json.Marshal(challengeDetail{Index: sel.Index})
	return &maa.CustomRecognitionResult{
		Box:    sel.Box,
		Detail: string(detail),
	}, true
}
