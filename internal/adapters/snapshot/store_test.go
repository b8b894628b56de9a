package snapshot_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"rankwatch/internal/adapters/snapshot"
	"rankwatch/internal/domain/model"
)

func TestFileStore(t *testing.T) {
	Convey("Given a file store in a temp directory", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "leaderboard.json")
		store := snapshot.NewFileStore(snapshot.WithPath(path))

		Convey("When loading before any save", func() {
			snap, err := store.Load(ctx)

			Convey("Then absence is not an error", func() {
				So(err, ShouldBeNil)
				So(snap, ShouldBeNil)
			})
		})

		Convey("When saving and reloading a snapshot", func() {
			in := model.NewSnapshot([]model.Record{
				{TeamID: 1, TeamName: "Alpha", Points: 99.5, Place: 1},
				{TeamID: 2, TeamName: "Bravo", Points: 42.25, Place: 2},
			})

			So(store.Save(ctx, in), ShouldBeNil)

			out, err := store.Load(ctx)

			Convey("Then the snapshot round-trips", func() {
				So(err, ShouldBeNil)
				So(out, ShouldNotBeNil)
				So(out.Len(), ShouldEqual, 2)
				So(out.Records(), ShouldResemble, in.Records())
			})

			Convey("Then the persisted form is indented and human-diffable", func() {
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(strings.HasPrefix(string(data), "[\n  {"), ShouldBeTrue)
				So(string(data), ShouldContainSubstring, "\"team_name\": \"Alpha\"")
			})
		})

		Convey("When saving over an existing snapshot", func() {
			So(store.Save(ctx, model.NewSnapshot([]model.Record{{TeamID: 1, TeamName: "Alpha", Place: 1}})), ShouldBeNil)
			So(store.Save(ctx, model.NewSnapshot([]model.Record{{TeamID: 2, TeamName: "Bravo", Place: 1}})), ShouldBeNil)

			out, err := store.Load(ctx)

			Convey("Then the new snapshot fully replaces the old", func() {
				So(err, ShouldBeNil)
				So(out.Len(), ShouldEqual, 1)
				So(out.Contains(2), ShouldBeTrue)
				So(out.Contains(1), ShouldBeFalse)
			})
		})

		Convey("When the persisted file is corrupt", func() {
			So(os.WriteFile(path, []byte("{not json"), 0o644), ShouldBeNil)

			snap, err := store.Load(ctx)

			Convey("Then it reports corrupt state", func() {
				So(snap, ShouldBeNil)
				So(errors.Is(err, snapshot.ErrCorruptState), ShouldBeTrue)
			})
		})

		Convey("When the target directory does not exist", func() {
			missing := snapshot.NewFileStore(snapshot.WithPath(filepath.Join(t.TempDir(), "no", "such", "dir", "x.json")))

			err := missing.Save(ctx, model.NewSnapshot(nil))

			Convey("Then it reports a persistence failure", func() {
				So(errors.Is(err, snapshot.ErrPersist), ShouldBeTrue)
			})
		})
	})
}
