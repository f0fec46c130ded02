/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Store interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)

	// Collection
	IncSources(stage string)
	AddTokens(n int)
	IncErrors(stage, kind string)
	ObserveStageNS(stage string, t int64)

	// Snapshot returns every counter and histogram sample count, keyed by
	// metric name and labels
	Snapshot() ([]Sample, error)
}

type Sample struct {
	Name   string
	Labels string
	Value  float64
}

type store struct {
	registry *prometheus.Registry
	Sources  *prometheus.CounterVec
	Tokens   prometheus.Counter
	Errors   *prometheus.CounterVec
	StageNS  *prometheus.HistogramVec
}

var (
	StageLabel = "stage"
	KindLabel  = "kind"

	StageScan  = "scan"
	StageParse = "parse"
)

func NewStore() Store {
	reg := prometheus.NewRegistry()

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(50*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &store{
		registry: reg,
		Sources: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lox_sources",
			Help: "The total number of source buffers handled by each stage",
		}, []string{StageLabel}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "lox_tokens",
			Help: "The total number of tokens scanned",
		}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lox_errors",
			Help: "Lexical and syntax errors found, by kind",
		}, []string{StageLabel, KindLabel}),
		StageNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lox_stage_ns",
			Help:    "Time spent scanning and parsing a source buffer",
			Buckets: buckets,
		}, []string{StageLabel}),
	}
}

func (ms *store) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *store) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *store) IncSources(stage string) {
	ms.Sources.With(prometheus.Labels{StageLabel: stage}).Inc()
}

func (ms *store) AddTokens(n int) {
	ms.Tokens.Add(float64(n))
}

func (ms *store) IncErrors(stage, kind string) {
	ms.Errors.With(prometheus.Labels{StageLabel: stage, KindLabel: kind}).Inc()
}

func (ms *store) ObserveStageNS(stage string, t int64) {
	ms.StageNS.
		With(prometheus.Labels{StageLabel: stage}).
		Observe(float64(t))
}

func (ms *store) Snapshot() ([]Sample, error) {
	families, err := ms.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName()}

			for i, l := range m.GetLabel() {
				if i > 0 {
					s.Labels += ","
				}
				s.Labels += l.GetName() + "=" + l.GetValue()
			}

			switch {
			case m.GetCounter() != nil:
				s.Value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				s.Name += "_count"
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}

			samples = append(samples, s)
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})

	return samples, nil
}
