package gonum

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

// Statistics accumulates the pixel intensities of stored images. Every image of a run has the same size,
// so the dataset mean is the mean of the image means and the dataset variance is the mean of the image
// variances plus the variance of the image means.
type Statistics struct {
	means      []float64
	variances  []float64
	labelMeans map[string][]float64
	pixels     []float64
}

func NewStatistics() *Statistics {
	return &Statistics{
		labelMeans: make(map[string][]float64),
	}
}

func (s *Statistics) Add(label string, asset *domain.ImageAsset) {
	gray := asset.Image
	bounds := gray.Bounds()
	s.pixels = s.pixels[:0]
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s.pixels = append(s.pixels, float64(gray.GrayAt(x, y).Y)/255)
		}
	}
	if len(s.pixels) == 0 {
		return
	}
	mean, variance := stat.PopMeanVariance(s.pixels, nil)
	s.means = append(s.means, mean)
	s.variances = append(s.variances, variance)
	s.labelMeans[label] = append(s.labelMeans[label], mean)
}

func (s *Statistics) Summary() domain.DatasetSummary {
	if len(s.means) == 0 {
		return domain.DatasetSummary{}
	}
	mean := stat.Mean(s.means, nil)
	variance := stat.Mean(s.variances, nil) + stat.PopVariance(s.means, nil)
	labelMeanIntensity := make(map[string]float64, len(s.labelMeans))
	for label, means := range s.labelMeans {
		labelMeanIntensity[label] = stat.Mean(means, nil)
	}
	return domain.DatasetSummary{
		Images:             len(s.means),
		MeanIntensity:      mean,
		StdDevIntensity:    math.Sqrt(variance),
		LabelMeanIntensity: labelMeanIntensity,
	}
}
