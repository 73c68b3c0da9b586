package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/goatboard/internal/adapters/output"
	"github.com/smartystreets/goconvey/convey"
)

const statsCSV = `personId,firstName,lastName,gameDate,playerteamCity,playerteamName,gameType,gameLabel,win,numMinutes,points,assists,reboundsTotal,steals,blocks,plusMinusPoints
1,Big,Man,2023-01-15,Oklahoma City,Thunder,Regular Season,,1,30,20,5,8,1,1,8
1,Big,Man,2023-01-17,Oklahoma City,Thunder,Regular Season,,0,32,24,6,9,1,0,-2
2,Tiny,Guard,2024-10-20,Oklahoma City,Thunder,Regular Season,,1,20,25,8,5,2,2,15
3,Old,Timer,1998-06-10,Chicago,Bulls,Playoffs,NBA Finals,1,42,33,4,6,2,1,5
`

const playersCSV = `personId,firstName,lastName,country,guard,forward,center,draftYear,draftNumber
1,Big,Man,USA,0,1,0,2019,5
3,Old,Timer,USA,1,0,0,1984,3
`

const teamsCSV = `teamCity,teamName,teamAbbrev
Oklahoma City,Thunder,OKC
Chicago,Bulls,CHI
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	cfg := fmt.Sprintf(`
log_level: error
stats_path: %q
players_path: %q
teams_path: %q
active_ids_path: %q
output_dir: %q
history_db: %q
metrics_textfile: %q
`,
		write("PlayerStatistics.csv", statsCSV),
		write("Players.csv", playersCSV),
		write("TeamHistories.csv", teamsCSV),
		write("active.txt", "1\n2\n"),
		filepath.Join(dir, "out"),
		filepath.Join(dir, "history.db"),
		filepath.Join(dir, "goatboard.prom"),
	)
	return write("config.yaml", cfg), dir
}

func execute(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		root := rootCmd()

		convey.Convey("Then it exposes rank, recent and history", func() {
			names := make([]string, 0, len(root.Commands()))
			for _, c := range root.Commands() {
				names = append(names, c.Name())
			}
			convey.So(names, convey.ShouldContain, "rank")
			convey.So(names, convey.ShouldContain, "recent")
			convey.So(names, convey.ShouldContain, "history")
			convey.So(root.PersistentFlags().Lookup("config"), convey.ShouldNotBeNil)
		})
	})
}

func TestCommands_EndToEnd(t *testing.T) {
	convey.Convey("Given a configured workspace", t, func() {
		ctx := context.Background()
		cfgPath, dir := writeFixtures(t)
		outDir := filepath.Join(dir, "out")

		convey.Convey("When rank runs", func() {
			out, err := execute(ctx, "--config", cfgPath, "rank")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "BOARD")

			convey.Convey("Then both documents are written", func() {
				career, err := output.ReadCareer(filepath.Join(outDir, "goat_system.json"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(career.Players), convey.ShouldEqual, 3)
				convey.So(career.Players[0].Rank, convey.ShouldEqual, 1)

				data, err := os.ReadFile(filepath.Join(outDir, "goat_recent.json"))
				convey.So(err, convey.ShouldBeNil)
				var recent output.RecentDocument
				convey.So(json.Unmarshal(data, &recent), convey.ShouldBeNil)
				convey.So(len(recent.Players), convey.ShouldEqual, 2)
				convey.So(recent.Players[0].PersonID, convey.ShouldEqual, "1")
			})

			convey.Convey("Then metrics are exported to the textfile", func() {
				data, err := os.ReadFile(filepath.Join(dir, "goatboard.prom"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "goatboard_ranking_records_read_total")
				convey.So(string(data), convey.ShouldContainSubstring, `phase="publish"`)
			})

			convey.Convey("Then history lists the recorded boards", func() {
				out, err := execute(ctx, "--config", cfgPath, "history")
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "career")
				convey.So(out, convey.ShouldContainSubstring, "recent")
			})

			convey.Convey("Then recent honors its limit flag", func() {
				_, err := execute(ctx, "--config", cfgPath, "recent", "--limit", "1")
				convey.So(err, convey.ShouldBeNil)
				data, err := os.ReadFile(filepath.Join(outDir, "goat_recent.json"))
				convey.So(err, convey.ShouldBeNil)
				var recent output.RecentDocument
				convey.So(json.Unmarshal(data, &recent), convey.ShouldBeNil)
				convey.So(len(recent.Players), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the statistics file is missing", func() {
			convey.So(os.Remove(filepath.Join(dir, "PlayerStatistics.csv")), convey.ShouldBeNil)
			_, err := execute(ctx, "--config", cfgPath, "rank")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "box-score statistics unavailable")
		})

		convey.Convey("When history runs before any rank", func() {
			_, err := execute(ctx, "--config", cfgPath, "history")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
