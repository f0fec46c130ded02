/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func find(samples []Sample, name, labels string) (Sample, bool) {
	for _, s := range samples {
		if s.Name == name && s.Labels == labels {
			return s, true
		}
	}
	return Sample{}, false
}

func TestSnapshot(t *testing.T) {
	m := NewStore()

	m.IncSources(StageScan)
	m.IncSources(StageScan)
	m.IncSources(StageParse)
	m.AddTokens(12)
	m.IncErrors(StageParse, "TrailingTokens")
	m.ObserveStageNS(StageScan, 1200)

	samples, err := m.Snapshot()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		labels string
		want   float64
	}{
		{"lox_sources", "stage=scan", 2},
		{"lox_sources", "stage=parse", 1},
		{"lox_tokens", "", 12},
		{"lox_errors", "kind=TrailingTokens,stage=parse", 1},
		{"lox_stage_ns_count", "stage=scan", 1},
	}

	for _, test := range tests {
		s, ok := find(samples, test.name, test.labels)
		if !ok {
			t.Errorf("missing sample %s{%s}", test.name, test.labels)
			continue
		}
		if s.Value != test.want {
			t.Errorf("%s{%s}: wanted %v, got %v", test.name, test.labels, test.want, s.Value)
		}
	}

	for i := 1; i < len(samples); i++ {
		if samples[i-1].Name > samples[i].Name {
			t.Errorf("samples out of order: %s before %s", samples[i-1].Name, samples[i].Name)
		}
	}
}

func TestRegisterCollector(t *testing.T) {
	m := NewStore()

	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "lox_extra", Help: "extra"})
	m.RegisterCollector(c)
	c.Add(3)

	samples, err := m.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := find(samples, "lox_extra", ""); !ok || s.Value != 3 {
		t.Errorf("wanted lox_extra to be 3, got %v", s)
	}

	if m.Registry() == nil {
		t.Error("wanted a registry")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := NewStore(), NewStore()
	a.AddTokens(5)

	samples, err := b.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := find(samples, "lox_tokens", ""); ok && s.Value != 0 {
		t.Errorf("wanted a fresh store to have no tokens, got %v", s.Value)
	}
}
