package domain

// DatasetSummary describes the pixel intensities (normalized to 0..1) of every image stored in a run.
type DatasetSummary struct {
	Images          int     `yaml:"images"`
	MeanIntensity   float64 `yaml:"meanIntensity"`
	StdDevIntensity float64 `yaml:"stdDevIntensity"`
	// LabelMeanIntensity is the mean intensity of the images stored under each label.
	LabelMeanIntensity map[string]float64 `yaml:"labelMeanIntensity,omitempty"`
}

type DatasetStatistics interface {
	Add(label string, asset *ImageAsset)
	Summary() DatasetSummary
}
