package baseline_test

import (
	"testing"

	"github.com/okian/goatboard/internal/domain/baseline"
	. "github.com/smartystreets/goconvey/convey"
)

func feed() baseline.Feed {
	return baseline.Feed{
		GeneratedAt: "2025-06-01T00:00:00Z",
		Players: []baseline.Entry{
			{
				Name:       "Michael Jordan",
				PersonID:   "893",
				Components: map[string]float64{"impact": 99, "stage": 100},
				Tier:       "Pantheon",
				Resume:     "6 titles, 6 Finals MVPs",
			},
			{
				Name:       "LeBron James",
				Components: map[string]float64{"impact": 98, "longevity": 100, "unknown": 500},
				Resume:     "Four rings",
			},
			{Name: "Gary Payton", PersonID: "56", Components: map[string]float64{"culture": 40}},
			{Name: "   ", Components: map[string]float64{"impact": 1000}},
		},
	}
}

func TestIndex(t *testing.T) {
	Convey("Given a baseline index", t, func() {
		ix := baseline.NewIndex(feed())

		Convey("Then nameless entries are dropped and maxima span the feed", func() {
			So(ix.Len(), ShouldEqual, 3)
			So(ix.GeneratedAt(), ShouldEqual, "2025-06-01T00:00:00Z")
			m := ix.Maxima()
			So(m["impact"], ShouldEqual, 99)
			So(m["stage"], ShouldEqual, 100)
			So(m["longevity"], ShouldEqual, 100)
			So(m["versatility"], ShouldEqual, 0)
			So(m["culture"], ShouldEqual, 40)
			_, ok := m["unknown"]
			So(ok, ShouldBeFalse)
		})

		Convey("When resolving by id", func() {
			match := ix.Resolve("893", "someoneelse")
			So(match.Kind, ShouldEqual, baseline.ByID)
			So(match.Entry.Name, ShouldEqual, "Michael Jordan")
			So(match.Kind.String(), ShouldEqual, "by_id")
		})

		Convey("When resolving by name", func() {
			match := ix.Resolve("2544", "lebronjames")
			So(match.Kind, ShouldEqual, baseline.ByName)
			So(match.Found(), ShouldBeTrue)
			So(ix.Baseline(match).Values["longevity"], ShouldEqual, 100)
		})

		Convey("When a namesake carries a different id", func() {
			match := ix.Resolve("1627780", "garypayton")
			So(match.Kind, ShouldEqual, baseline.Unmatched)
			So(match.Found(), ShouldBeFalse)
			So(ix.Baseline(match).Values, ShouldBeNil)
		})

		Convey("When nothing matches", func() {
			So(ix.Resolve("1", "nobody").Kind.String(), ShouldEqual, "unmatched")
		})

		Convey("Then resumes are keyed by name", func() {
			So(ix.Resumes(), ShouldResemble, map[string]string{
				"michaeljordan": "6 titles, 6 Finals MVPs",
				"lebronjames":   "Four rings",
			})
		})
	})

	Convey("Given no baseline at all", t, func() {
		var ix *baseline.Index

		So(ix.Len(), ShouldEqual, 0)
		So(ix.Resolve("893", "michaeljordan").Kind, ShouldEqual, baseline.Unmatched)
		So(ix.Maxima(), ShouldBeNil)
		So(ix.Resumes(), ShouldBeEmpty)
		So(ix.GeneratedAt(), ShouldBeEmpty)
	})
}
