package service

import "math"

// ScoreConverterService turns a raw score into the figures shown next to it.
type ScoreConverterService interface {
	ToPercentage(score, total int) float64
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ToPercentage returns score/total on a 0-100 scale rounded to two decimals.
// A test without questions scores 0.
func (s *scoreConverterServiceImpl) ToPercentage(score, total int) float64 {
	if total <= 0 || score <= 0 {
		return 0
	}
	if score > total {
		score = total
	}
	return math.Round(float64(score)/float64(total)*10000) / 100
}
