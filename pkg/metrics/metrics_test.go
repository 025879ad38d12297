package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it should own a private registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, GetRegistry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("ratings"),
				WithDeltaBuckets([]float64{-1, 0, 1}),
				WithLatencyBuckets([]float64{1, 10}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should register on the given registry", func() {
				So(manager.Registry(), ShouldEqual, registry)
				manager.RecordMatchProcessed()

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_ratings_matches_processed_total")
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a fresh metrics manager", t, func() {
		m := NewManager()

		Convey("When recording engine events", func() {
			m.RecordMatchProcessed()
			m.RecordMatchProcessed()
			m.RecordMatchSkipped()
			m.RecordUnknownEntity()
			m.RecordInvalidOutcome()
			m.RecordFloorClamp()
			m.RecordRatingDelta(10)
			m.UpdateTeam("Utah Jazz", 1210, 3)
			m.UpdateTotalTeams(30)

			Convey("Then the collectors should reflect them", func() {
				So(testutil.ToFloat64(m.matchesProcessed), ShouldEqual, 2)
				So(testutil.ToFloat64(m.matchesSkipped), ShouldEqual, 1)
				So(testutil.ToFloat64(m.unknownEntities), ShouldEqual, 1)
				So(testutil.ToFloat64(m.invalidOutcomes), ShouldEqual, 1)
				So(testutil.ToFloat64(m.floorClamps), ShouldEqual, 1)
				So(testutil.ToFloat64(m.teamRating.WithLabelValues("Utah Jazz")), ShouldEqual, 1210)
				So(testutil.ToFloat64(m.teamStreak.WithLabelValues("Utah Jazz")), ShouldEqual, 3)
				So(testutil.ToFloat64(m.totalTeams), ShouldEqual, 30)
				So(testutil.CollectAndCount(m.ratingDelta), ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP requests", func() {
			m.RecordHTTPRequest("standings", "GET", "200", 1.5)

			Convey("Then the request counter should increment", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("standings", "GET", "200")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given the process-wide manager", t, func() {
		Convey("Then package-level recording should not panic", func() {
			So(func() { RecordHTTPRequest("healthz", "GET", "200", 0.1) }, ShouldNotPanic)
			So(Default(), ShouldNotBeNil)
			So(Default().Registry(), ShouldEqual, GetRegistry())
		})
	})
}
