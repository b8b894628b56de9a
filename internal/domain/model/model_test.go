package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"rankwatch/internal/domain/model"
)

func TestSnapshot(t *testing.T) {
	Convey("Given records in fetch order", t, func() {
		records := []model.Record{
			{TeamID: 10, TeamName: "Alpha", Place: 1},
			{TeamID: 20, TeamName: "Bravo", Place: 2},
			{TeamID: 30, TeamName: "Charlie", Place: 3},
		}

		Convey("When building a snapshot", func() {
			snap := model.NewSnapshot(records)

			Convey("Then lookups find every record", func() {
				So(snap.Len(), ShouldEqual, 3)
				r, ok := snap.Lookup(20)
				So(ok, ShouldBeTrue)
				So(r.TeamName, ShouldEqual, "Bravo")
				So(snap.Contains(30), ShouldBeTrue)
				So(snap.Contains(99), ShouldBeFalse)
			})

			Convey("Then record order is preserved", func() {
				got := snap.Records()
				So(got, ShouldHaveLength, 3)
				So(got[0].TeamID, ShouldEqual, 10)
				So(got[2].TeamID, ShouldEqual, 30)
			})
		})

		Convey("When the input contains a duplicate team id", func() {
			snap := model.NewSnapshot([]model.Record{
				{TeamID: 10, TeamName: "Alpha", Place: 1},
				{TeamID: 20, TeamName: "Bravo", Place: 2},
				{TeamID: 10, TeamName: "Alpha v2", Place: 5},
			})

			Convey("Then the first position and the last value win", func() {
				So(snap.Len(), ShouldEqual, 2)
				So(snap.Records()[0].TeamName, ShouldEqual, "Alpha v2")
				So(snap.Records()[0].Place, ShouldEqual, 5)
				So(snap.Records()[1].TeamID, ShouldEqual, 20)
			})
		})

		Convey("When the snapshot is nil", func() {
			var snap *model.Snapshot

			Convey("Then accessors degrade to absence", func() {
				So(snap.Len(), ShouldEqual, 0)
				So(snap.Contains(10), ShouldBeFalse)
				_, ok := snap.Lookup(10)
				So(ok, ShouldBeFalse)
				So(snap.Records(), ShouldBeNil)
			})
		})

		Convey("When building from an empty slice", func() {
			snap := model.NewSnapshot(nil)

			So(snap.Len(), ShouldEqual, 0)
		})
	})
}
