package cache

import "github.com/shashiranjanraj/backoffice/pkg/metrics"

func hit(s Store)  { metrics.CacheHits.WithLabelValues(s.Driver()).Inc() }
func miss(s Store) { metrics.CacheMisses.WithLabelValues(s.Driver()).Inc() }
