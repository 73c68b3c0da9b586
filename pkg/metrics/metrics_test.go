package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("board"),
				WithHistogramBuckets([]float64{1, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordRead()

			Convey("Then collectors use the configured names and labels", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, mf := range families {
					if mf.GetName() == "test_board_records_read_total" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When recording pipeline activity", func() {
			m.RecordRead()
			m.RecordRead()
			m.RecordSkipped("missing_id")
			m.SetPopulation("career", 120)
			m.SetTopScore("career", 97.4)
			m.RecordBaselineMatch("by_id")
			m.ObservePhase("aggregate", 12)
			m.RecordRunError("stats")
			m.MarkRun(1700000000)

			Convey("Then the collectors reflect it", func() {
				So(testutil.ToFloat64(m.recordsRead), ShouldEqual, 2)
				So(testutil.ToFloat64(m.recordsSkipped.WithLabelValues("missing_id")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.population.WithLabelValues("career")), ShouldEqual, 120)
				So(testutil.ToFloat64(m.topScore.WithLabelValues("career")), ShouldEqual, 97.4)
				So(testutil.ToFloat64(m.baselineMatches.WithLabelValues("by_id")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.runErrors.WithLabelValues("stats")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.lastRunUnix), ShouldEqual, 1700000000)
			})
		})

		Convey("When calling the package-level helpers", func() {
			Convey("Then they should not panic", func() {
				So(func() {
					RecordPhaseDuration("publish", 3)
					RecordRunError("publish")
				}, ShouldNotPanic)
				So(Default(), ShouldNotBeNil)
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a populated registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))
		m.SetPopulation("career", 3)

		Convey("When writing to a textfile", func() {
			path := filepath.Join(t.TempDir(), "goatboard.prom")
			err := WriteTextfile(path, registry)

			Convey("Then the file contains the exposition", func() {
				So(err, ShouldBeNil)
				raw, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(strings.Contains(string(raw), `goatboard_ranking_population{board="career"} 3`), ShouldBeTrue)
			})
		})

		Convey("When the path is empty", func() {
			err := WriteTextfile("", registry)

			Convey("Then it should be rejected", func() {
				So(err, ShouldEqual, ErrNoTextfilePath)
			})
		})
	})
}
