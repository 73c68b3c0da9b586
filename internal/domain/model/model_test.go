package model_test

import (
	"sort"
	"testing"
	"time"

	model "github.com/okian/goatboard/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestPlayerMeta(t *testing.T) {
	convey.Convey("Given a player registry row", t, func() {
		meta := model.PlayerMeta{
			PersonID:  "1628983",
			FirstName: "Shai",
			LastName:  "Gilgeous-Alexander",
			Guard:     true,
			Forward:   true,
		}

		convey.Convey("Then the name and key are derived from it", func() {
			convey.So(meta.Name(), convey.ShouldEqual, "Shai Gilgeous-Alexander")
			convey.So(meta.NameKey(), convey.ShouldEqual, "shaigilgeousalexander")
			convey.So(meta.Positions(), convey.ShouldEqual, 2)
		})

		convey.Convey("When the name is blank", func() {
			blank := model.PlayerMeta{PersonID: "42"}

			convey.Convey("Then the id is used as the name", func() {
				convey.So(blank.Name(), convey.ShouldEqual, "42")
				convey.So(blank.NameKey(), convey.ShouldBeEmpty)
			})
		})
	})
}

func TestNormalizeNameKey(t *testing.T) {
	convey.Convey("Given names with punctuation and case", t, func() {
		convey.So(model.NormalizeNameKey("LeBron James"), convey.ShouldEqual, "lebronjames")
		convey.So(model.NormalizeNameKey("  Shaquille O'Neal "), convey.ShouldEqual, "shaquilleoneal")
		convey.So(model.NormalizeNameKey("Gary Payton II"), convey.ShouldEqual, "garypaytonii")
		convey.So(model.NormalizeNameKey(""), convey.ShouldBeEmpty)
	})
}

func TestComparePersonID(t *testing.T) {
	convey.Convey("Given person ids", t, func() {
		convey.So(model.ComparePersonID("9", "10"), convey.ShouldEqual, -1)
		convey.So(model.ComparePersonID("10", "9"), convey.ShouldEqual, 1)
		convey.So(model.ComparePersonID("77", "77"), convey.ShouldEqual, 0)
		convey.So(model.ComparePersonID("abc", "abd"), convey.ShouldEqual, -1)

		convey.Convey("Mixed integer and text ids sort into one total order", func() {
			ids := []string{"1a", "30", "9", "2b", "10"}
			for range 3 {
				sort.Slice(ids, func(i, j int) bool { return model.ComparePersonID(ids[i], ids[j]) < 0 })
				convey.So(ids, convey.ShouldResemble, []string{"9", "10", "30", "1a", "2b"})
				ids[0], ids[4] = ids[4], ids[0]
			}
			convey.So(model.ComparePersonID("10", "1a"), convey.ShouldEqual, -1)
			convey.So(model.ComparePersonID("1a", "9"), convey.ShouldEqual, 1)
			convey.So(model.ComparePersonID("9", "1a"), convey.ShouldEqual, -1)
		})
	})
}

func TestSeasons(t *testing.T) {
	convey.Convey("Given box-score game dates", t, func() {
		convey.Convey("When parsing supported layouts", func() {
			for _, raw := range []string{"2023-01-15", "2023-01-15 19:30", "2023-01-15 19:30:00", "2023-01-15T19:30:00Z"} {
				got, ok := model.ParseGameDate(raw)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(got.Year(), convey.ShouldEqual, 2023)
				convey.So(got.Month(), convey.ShouldEqual, time.January)
			}
		})

		convey.Convey("When parsing garbage", func() {
			_, ok := model.ParseGameDate("yesterday")
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = model.ParseGameDate("  ")
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("Then season years roll over in July", func() {
			convey.So(model.SeasonYear(time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2022)
			convey.So(model.SeasonYear(time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2022)
			convey.So(model.SeasonYear(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2023)
		})
	})

	convey.Convey("Given season labels", t, func() {
		convey.So(model.SeasonLabel(2022), convey.ShouldEqual, "2022-23")
		convey.So(model.SeasonLabel(1999), convey.ShouldEqual, "1999-00")
		convey.So(model.SeasonSpan([]int{2024, 2022, 2023}), convey.ShouldEqual, "2022-23–2024-25")
		convey.So(model.SeasonSpan([]int{2023}), convey.ShouldEqual, "2023-24")
		convey.So(model.SeasonSpan(nil), convey.ShouldBeEmpty)

		w := model.Window{Start: 2022, Span: 3}
		convey.So(w.Label(), convey.ShouldEqual, "2022-23 to 2024-25")
		convey.So(w.Contains(2022), convey.ShouldBeTrue)
		convey.So(w.Contains(2024), convey.ShouldBeTrue)
		convey.So(w.Contains(2025), convey.ShouldBeFalse)
		convey.So(w.Contains(2021), convey.ShouldBeFalse)
	})
}

func TestComponents(t *testing.T) {
	convey.Convey("Given career components", t, func() {
		c := model.CareerComponents{Impact: 1, Stage: 2, Longevity: 3, Versatility: 4, Culture: 5}

		convey.So(c.Values(), convey.ShouldResemble, []float64{1, 2, 3, 4, 5})
		convey.So(c.Sum(), convey.ShouldEqual, 15)
		convey.So(model.CareerComponentsFrom(c.Values()), convey.ShouldResemble, c)
		convey.So(model.CareerComponentsFrom([]float64{1}), convey.ShouldResemble, model.CareerComponents{})
	})

	convey.Convey("Given a Finals MVP ledger", t, func() {
		ledger := model.FinalsMVPLedger{"michaeljordan": {Count: 6, Years: []int{1991, 1992, 1993, 1996, 1997, 1998}}}

		convey.So(ledger.CountFor("michaeljordan"), convey.ShouldEqual, 6)
		convey.So(ledger.CountFor("nobody"), convey.ShouldEqual, 0)
		convey.So(model.FinalsMVPLedger(nil).CountFor("x"), convey.ShouldEqual, 0)
	})
}
