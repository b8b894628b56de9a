package ctftime_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"rankwatch/internal/adapters/ctftime"
)

func TestLeaderboard(t *testing.T) {
	Convey("Given a ranking source serving a leaderboard", t, func() {
		ctx := context.Background()

		Convey("When the payload includes non-canonical metadata", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[
					{"team_id": 1, "team_name": "Alpha", "points": 100.5, "country_place": 1, "team_country": "NO", "place": 17},
					{"team_id": 2, "team_name": "Bravo", "points": 80.25, "country_place": 2, "team_country": "NO", "place": 18}
				]`))
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL))
			snap, err := client.Leaderboard(ctx, "no")

			Convey("Then records carry only the canonical fields", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/api/v1/top-by-country/no/")
				So(snap.Len(), ShouldEqual, 2)

				rec, ok := snap.Lookup(1)
				So(ok, ShouldBeTrue)
				So(rec.TeamName, ShouldEqual, "Alpha")
				So(rec.Points, ShouldEqual, 100.5)
				So(rec.Place, ShouldEqual, 1)
			})
		})

		Convey("When the payload is malformed", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"oops": `))
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL))
			snap, err := client.Leaderboard(ctx, "no")

			Convey("Then it reports the source as unavailable", func() {
				So(snap, ShouldBeNil)
				So(errors.Is(err, ctftime.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When the server fails transiently", func() {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte(`[{"team_id": 1, "team_name": "Alpha", "points": 1, "country_place": 1}]`))
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL), ctftime.WithMaxAttempts(3))
			snap, err := client.Leaderboard(ctx, "no")

			Convey("Then the fetch is retried until it succeeds", func() {
				So(err, ShouldBeNil)
				So(snap.Len(), ShouldEqual, 1)
				So(calls.Load(), ShouldEqual, 3)
			})
		})

		Convey("When the server keeps failing", func() {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL), ctftime.WithMaxAttempts(2))
			_, err := client.Leaderboard(ctx, "no")

			Convey("Then attempts stay bounded and the error is unavailable", func() {
				So(errors.Is(err, ctftime.ErrUnavailable), ShouldBeTrue)
				So(calls.Load(), ShouldEqual, 2)
			})
		})
	})
}

func TestTeamCountry(t *testing.T) {
	Convey("Given a ranking source serving team info", t, func() {
		ctx := context.Background()

		Convey("When the team exists", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"id": 109611, "name": "h4x", "country": "NO"}`))
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL))
			country, err := client.TeamCountry(ctx, 109611)

			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/api/v1/teams/109611/")
			So(country, ShouldEqual, "NO")
		})

		Convey("When the team does not exist", func() {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			client := ctftime.New(ctftime.WithBaseURL(srv.URL))
			_, err := client.TeamCountry(ctx, 42)

			Convey("Then it maps to a not-found error without retrying", func() {
				So(errors.Is(err, ctftime.ErrTeamNotFound), ShouldBeTrue)
				So(calls.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the server is unreachable", func() {
			client := ctftime.New(
				ctftime.WithBaseURL("http://127.0.0.1:1"),
				ctftime.WithMaxAttempts(1),
			)
			_, err := client.TeamCountry(ctx, 42)

			So(errors.Is(err, ctftime.ErrUnavailable), ShouldBeTrue)
		})
	})
}
