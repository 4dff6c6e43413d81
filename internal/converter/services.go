package converter

import "github.com/beetlebugorg/openair/pkg/yaixm"

// ServiceIndex maps feature ids to the frequency of the service controlling
// them.
type ServiceIndex map[string]float64

// IndexServices builds the feature id to frequency lookup. When several
// services list the same feature the last one wins.
func IndexServices(services []yaixm.Service) ServiceIndex {
	idx := make(ServiceIndex)
	for _, s := range services {
		for _, id := range s.Controls {
			idx[id] = s.Frequency
		}
	}
	return idx
}

// Frequency returns the frequency for a feature id, if any.
func (idx ServiceIndex) Frequency(featureID string) (float64, bool) {
	if featureID == "" {
		return 0, false
	}
	f, ok := idx[featureID]
	return f, ok && f != 0
}

// apply sets the frequency of every volume controlled by a service.
func (idx ServiceIndex) apply(vols []Volume) {
	for i := range vols {
		if f, ok := idx.Frequency(vols[i].FeatureID); ok {
			vols[i].Frequency = f
		}
	}
}
