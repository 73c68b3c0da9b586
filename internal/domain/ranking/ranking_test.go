package ranking_test

import (
	"math"
	"testing"

	"github.com/okian/goatboard/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFinalScore(t *testing.T) {
	Convey("Given component sums", t, func() {
		So(ranking.FinalScore(87.26), ShouldEqual, 87.3)
		So(ranking.FinalScore(100.04), ShouldEqual, 100)
		So(ranking.FinalScore(120), ShouldEqual, 100)
		So(ranking.FinalScore(-3), ShouldEqual, 0)
		So(ranking.FinalScore(math.NaN()), ShouldEqual, 0)
	})
}

func TestTier(t *testing.T) {
	Convey("Given scores on each threshold", t, func() {
		So(ranking.Tier(92), ShouldEqual, "Pantheon")
		So(ranking.Tier(91.9), ShouldEqual, "Inner Circle")
		So(ranking.Tier(68), ShouldEqual, "All-Time Great")
		So(ranking.Tier(52), ShouldEqual, "Hall of Fame")
		So(ranking.Tier(36), ShouldEqual, "All-Star")
		So(ranking.Tier(22), ShouldEqual, "Starter")
		So(ranking.Tier(10), ShouldEqual, "Rotation")
		So(ranking.Tier(9.9), ShouldEqual, "Reserve")
		So(ranking.Tier(0), ShouldEqual, ranking.TierReserve)
	})

	Convey("Given an explicit tier label", t, func() {
		So(ranking.ResolveTier(" Pantheon ", 3), ShouldEqual, "Pantheon")
		So(ranking.ResolveTier("", 55), ShouldEqual, "Hall of Fame")
	})
}
