package confidence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run(`weights sum to 1.0`, func(t *testing.T) {
		var sum float64
		for _, w := range Weights() {
			sum += w
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run(`worked example`, func(t *testing.T) {
		in := Inputs{
			VoiceVolume:        75,
			VoiceStability:     80,
			PauseFrequency:     20,
			FacialConfidence:   85,
			EmotionPositivity:  40,
			AnswerQuality:      78,
			AnswerCompleteness: 82,
		}
		res := Aggregate(in)
		require.Equal(t, 81, res.Score)
		require.Equal(t, LevelVeryConfident, res.Level)
		require.InDelta(t, 80.0, res.Breakdown[MetricPauseFrequency], 1e-9)
		require.InDelta(t, 90.0, res.Breakdown[MetricEmotionPositivity], 1e-9)
		require.InDelta(t, 75.0, res.Breakdown[MetricVoiceVolume], 1e-9)
	})

	t.Run(`deterministic`, func(t *testing.T) {
		in := Inputs{
			VoiceVolume:        33.3,
			VoiceStability:     44.4,
			PauseFrequency:     55.5,
			FacialConfidence:   66.6,
			EmotionPositivity:  -12.5,
			AnswerQuality:      77.7,
			AnswerCompleteness: 88.8,
		}
		first := Aggregate(in)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, Aggregate(in))
		}
	})

	t.Run(`score stays in range for documented input ranges`, func(t *testing.T) {
		cases := []Inputs{
			{},
			{VoiceVolume: 100, VoiceStability: 100, PauseFrequency: 0, FacialConfidence: 100, EmotionPositivity: 100, AnswerQuality: 100, AnswerCompleteness: 100},
			{VoiceVolume: 0, VoiceStability: 0, PauseFrequency: 100, FacialConfidence: 0, EmotionPositivity: -100, AnswerQuality: 0, AnswerCompleteness: 0},
			{VoiceVolume: 50, VoiceStability: 50, PauseFrequency: 50, FacialConfidence: 50, EmotionPositivity: 0, AnswerQuality: 50, AnswerCompleteness: 50},
		}
		for _, in := range cases {
			res := Aggregate(in)
			require.GreaterOrEqual(t, res.Score, 0)
			require.LessOrEqual(t, res.Score, 100)
		}
	})

	t.Run(`no clamping of out-of-range inputs`, func(t *testing.T) {
		in := Inputs{VoiceVolume: 200}
		res := Aggregate(in)
		require.InDelta(t, 200.0, res.Breakdown[MetricVoiceVolume], 1e-9)
	})
}

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{100, LevelVeryConfident},
		{81, LevelVeryConfident},
		{80, LevelVeryConfident},
		{79, LevelConfident},
		{65, LevelConfident},
		{64, LevelModeratelyConfident},
		{50, LevelModeratelyConfident},
		{49, LevelLessConfident},
		{35, LevelLessConfident},
		{34, LevelNeedsImprovement},
		{0, LevelNeedsImprovement},
	}
	for _, c := range cases {
		require.Equal(t, c.level, LevelForScore(c.score), "score %d", c.score)
	}
}
