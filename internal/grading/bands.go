package grading

// Band classifies a similarity ratio into the five feedback levels
// shown to the user after a subjective answer.
type Band int

const (
	BandOff Band = iota
	BandSlight
	BandSimilar
	BandClose
	BandPerfect
)

// BandFor uses the same thresholds as the default score curve.
func BandFor(similarity float64) Band {
	switch {
	case similarity >= 0.9:
		return BandPerfect
	case similarity >= 0.8:
		return BandClose
	case similarity >= 0.7:
		return BandSimilar
	case similarity >= 0.6:
		return BandSlight
	}
	return BandOff
}

func (b Band) String() string {
	switch b {
	case BandPerfect:
		return "완벽합니다!"
	case BandClose:
		return "거의 정확합니다!"
	case BandSimilar:
		return "비슷하지만 틀렸습니다."
	case BandSlight:
		return "조금 비슷합니다."
	}
	return "다시 한번 학습해보세요."
}
