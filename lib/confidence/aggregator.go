// Package confidence turns the per-answer analysis metrics into a single
// 0..100 confidence score with a discrete level label.
//
// Note on emotion positivity: the metric arrives on a -100..100 scale and is
// normalized with a flat +50 shift, which does not map the full range onto
// 0..100 (-100 becomes -50, +100 becomes 150). The shift is kept as-is so
// scores stay comparable with the original tool; rescaling is a product
// decision, not a code fix.
package confidence

import "math"

// Inputs are the seven sub-metrics of one evaluated answer. All values are
// expected on a 0..100 scale except EmotionPositivity (-100..100). Values are
// taken as already validated: out-of-range inputs are propagated
// arithmetically, never clamped.
type Inputs struct {
	VoiceVolume        float64
	VoiceStability     float64
	PauseFrequency     float64 // lower is better
	FacialConfidence   float64
	EmotionPositivity  float64 // -100..100
	AnswerQuality      float64
	AnswerCompleteness float64
}

// Result is the aggregated score, its level label and the normalized
// per-metric values the score was computed from.
type Result struct {
	Score     int                `json:"score"`
	Level     string             `json:"level"`
	Breakdown map[string]float64 `json:"breakdown"`
}

const (
	MetricVoiceVolume        = "voiceVolume"
	MetricVoiceStability     = "voiceStability"
	MetricPauseFrequency     = "pauseFrequency"
	MetricFacialConfidence   = "facialConfidence"
	MetricEmotionPositivity  = "emotionPositivity"
	MetricAnswerQuality      = "answerQuality"
	MetricAnswerCompleteness = "answerCompleteness"
)

const (
	LevelVeryConfident       = "Very Confident"
	LevelConfident           = "Confident"
	LevelModeratelyConfident = "Moderately Confident"
	LevelLessConfident       = "Less Confident"
	LevelNeedsImprovement    = "Needs Improvement"
)

// weights sum to 1.0, checked by tests.
var weights = map[string]float64{
	MetricVoiceVolume:        0.15,
	MetricVoiceStability:     0.15,
	MetricPauseFrequency:     0.10,
	MetricFacialConfidence:   0.20,
	MetricEmotionPositivity:  0.10,
	MetricAnswerQuality:      0.15,
	MetricAnswerCompleteness: 0.15,
}

// Weights returns a copy of the metric weight table.
func Weights() map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}

// Aggregate computes the weighted confidence score. Pure function, no error
// conditions.
func Aggregate(in Inputs) Result {
	breakdown := map[string]float64{
		MetricVoiceVolume:        in.VoiceVolume,
		MetricVoiceStability:     in.VoiceStability,
		MetricPauseFrequency:     100 - in.PauseFrequency,
		MetricFacialConfidence:   in.FacialConfidence,
		MetricEmotionPositivity:  in.EmotionPositivity + 50,
		MetricAnswerQuality:      in.AnswerQuality,
		MetricAnswerCompleteness: in.AnswerCompleteness,
	}

	var sum float64
	for metric, value := range breakdown {
		sum += value * weights[metric]
	}
	score := int(math.Round(sum))

	return Result{
		Score:     score,
		Level:     LevelForScore(score),
		Breakdown: breakdown,
	}
}

// LevelForScore maps a rounded score to its label by fixed thresholds.
func LevelForScore(score int) string {
	switch {
	case score >= 80:
		return LevelVeryConfident
	case score >= 65:
		return LevelConfident
	case score >= 50:
		return LevelModeratelyConfident
	case score >= 35:
		return LevelLessConfident
	default:
		return LevelNeedsImprovement
	}
}
