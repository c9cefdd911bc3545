// SPDX-License-Identifier: MIT

package trueskill_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trueskill/rating"
)

const (
	ratingTolerance  = 0.085
	qualityTolerance = 0.0005
)

// golden is a published scenario: players are keyed "p1", "p2", ... in
// team order.
type golden struct {
	name     string
	gameInfo *rating.GameInfo
	teams    [][]rating.Rating
	ranks    []int
	want     []rating.Rating
	quality  float64
}

func (g golden) info() rating.GameInfo {
	if g.gameInfo != nil {
		return *g.gameInfo
	}
	return rating.DefaultGameInfo()
}

func (g golden) roster() []*rating.Team {
	teams := make([]*rating.Team, len(g.teams))
	n := 0
	for i, ratings := range g.teams {
		teams[i] = rating.NewTeam()
		for _, r := range ratings {
			n++
			teams[i].Add(fmt.Sprintf("p%d", n), r)
		}
	}
	return teams
}

func (g golden) results() []rating.Result {
	out := make([]rating.Result, len(g.want))
	for i, r := range g.want {
		out[i] = rating.Result{Player: fmt.Sprintf("p%d", i+1), Rating: r}
	}
	return out
}

func requireResults(t *testing.T, want, got []rating.Result, tolerance float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Fatalf("ratings mismatch (-want +got):\n%s", diff)
	}
}

func mustGameInfo(mean, stddev, beta, tau, drawProbability float64) *rating.GameInfo {
	gi, err := rating.NewGameInfo(mean, stddev, beta, tau, drawProbability)
	if err != nil {
		panic(err)
	}
	return &gi
}

func r(mean, stddev float64) rating.Rating { return rating.NewRating(mean, stddev) }

func repeat(x rating.Rating, n int) []rating.Rating {
	out := make([]rating.Rating, n)
	for i := range out {
		out[i] = x
	}
	return out
}

var fresh = rating.DefaultGameInfo().DefaultRating()

var twoPlayerCases = []golden{
	{
		name:    "win",
		teams:   [][]rating.Rating{{fresh}, {fresh}},
		ranks:   []int{1, 2},
		want:    []rating.Rating{r(29.39583201999924, 7.171475587326186), r(20.60416798000076, 7.171475587326186)},
		quality: 0.447,
	},
	{
		name:    "draw",
		teams:   [][]rating.Rating{{fresh}, {fresh}},
		ranks:   []int{1, 1},
		want:    []rating.Rating{r(25.0, 6.4575196623173081), r(25.0, 6.4575196623173081)},
		quality: 0.447,
	},
	{
		name:    "upset draw",
		teams:   [][]rating.Rating{{fresh}, {r(50, 12.5)}},
		ranks:   []int{1, 1},
		want:    []rating.Rating{r(31.662, 7.137), r(35.010, 7.910)},
		quality: 0.110,
	},
	{
		name:     "chess",
		gameInfo: mustGameInfo(1200, 1200.0/3, 200, 1200.0/300, 0.03),
		teams:    [][]rating.Rating{{r(1301.0007, 42.9232)}, {r(1188.7560, 42.5570)}},
		ranks:    []int{1, 2},
		want:     []rating.Rating{r(1304.7820836053318, 42.843513887848658), r(1185.0383099003536, 42.485604606897752)},
		quality:  -1,
	},
}

var twoTeamCases = []golden{
	{
		name:    "one on two simple",
		teams:   [][]rating.Rating{{fresh}, repeat(fresh, 2)},
		ranks:   []int{1, 2},
		want:    []rating.Rating{r(33.730, 7.317), r(16.270, 7.317), r(16.270, 7.317)},
		quality: 0.135,
	},
	{
		name:    "one on two somewhat balanced",
		teams:   [][]rating.Rating{{r(40, 6)}, {r(20, 7), r(25, 8)}},
		ranks:   []int{1, 2},
		want:    []rating.Rating{r(42.744, 5.602), r(16.266, 6.359), r(20.123, 7.028)},
		quality: 0.478,
	},
	{
		name:    "one on two draw",
		teams:   [][]rating.Rating{{fresh}, repeat(fresh, 2)},
		ranks:   []int{1, 1},
		want:    []rating.Rating{r(31.660, 7.138), r(18.340, 7.138), r(18.340, 7.138)},
		quality: 0.135,
	},
	{
		name:    "one on three simple",
		teams:   [][]rating.Rating{{fresh}, repeat(fresh, 3)},
		ranks:   []int{1, 2},
		want:    append([]rating.Rating{r(36.337, 7.527)}, repeat(r(13.663, 7.527), 3)...),
		quality: 0.012,
	},
	{
		name:    "one on three draw",
		teams:   [][]rating.Rating{{fresh}, repeat(fresh, 3)},
		ranks:   []int{1, 1},
		want:    append([]rating.Rating{r(34.990, 7.455)}, repeat(r(15.010, 7.455), 3)...),
		quality: 0.012,
	},
	{
		name:    "one on seven simple",
		teams:   [][]rating.Rating{{fresh}, repeat(fresh, 7)},
		ranks:   []int{1, 2},
		want:    append([]rating.Rating{r(40.582, 7.917)}, repeat(r(9.418, 7.917), 7)...),
		quality: 0.000,
	},
	{
		name:    "two on two simple",
		teams:   [][]rating.Rating{repeat(fresh, 2), repeat(fresh, 2)},
		ranks:   []int{1, 2},
		want:    append(repeat(r(28.108, 7.774), 2), repeat(r(21.892, 7.774), 2)...),
		quality: 0.447,
	},
	{
		name:    "two on two unbalanced draw",
		teams:   [][]rating.Rating{{r(15, 8), r(20, 6)}, {r(25, 4), r(30, 3)}},
		ranks:   []int{1, 1},
		want:    []rating.Rating{r(21.570, 6.556), r(23.696, 5.418), r(23.357, 3.833), r(29.075, 2.931)},
		quality: 0.214,
	},
	{
		name:    "two on two draw",
		teams:   [][]rating.Rating{repeat(fresh, 2), repeat(fresh, 2)},
		ranks:   []int{1, 1},
		want:    repeat(r(25, 7.455), 4),
		quality: 0.447,
	},
	{
		name:    "two on two upset",
		teams:   [][]rating.Rating{{r(20, 8), r(25, 6)}, {r(35, 7), r(40, 5)}},
		ranks:   []int{1, 2},
		want:    []rating.Rating{r(29.698, 7.008), r(30.455, 5.594), r(27.575, 6.346), r(36.211, 4.768)},
		quality: 0.084,
	},
}

var multiTeamCases = []golden{
	{
		name:    "three teams of one",
		teams:   [][]rating.Rating{{fresh}, {fresh}, {fresh}},
		ranks:   []int{1, 2, 3},
		want:    []rating.Rating{r(31.675, 6.656), r(25.000, 6.208), r(18.325, 6.656)},
		quality: 0.200,
	},
	{
		name:    "three teams of one drawn",
		teams:   [][]rating.Rating{{fresh}, {fresh}, {fresh}},
		ranks:   []int{1, 1, 1},
		want:    []rating.Rating{r(25.000, 5.698), r(25.000, 5.695), r(25.000, 5.698)},
		quality: 0.200,
	},
	{
		name:    "four teams of one",
		teams:   [][]rating.Rating{{fresh}, {fresh}, {fresh}, {fresh}},
		ranks:   []int{1, 2, 3, 4},
		want:    []rating.Rating{r(33.207, 6.348), r(27.401, 5.787), r(22.599, 5.787), r(16.793, 6.348)},
		quality: 0.089,
	},
	{
		name:    "five teams of one",
		teams:   [][]rating.Rating{{fresh}, {fresh}, {fresh}, {fresh}, {fresh}},
		ranks:   []int{1, 2, 3, 4, 5},
		want:    []rating.Rating{r(34.363, 6.136), r(29.058, 5.536), r(25.000, 5.420), r(20.942, 5.536), r(15.637, 6.136)},
		quality: 0.040,
	},
	{
		name: "two on four on two, win then draw",
		teams: [][]rating.Rating{
			{r(40, 4), r(45, 3)},
			{r(20, 7), r(19, 6), r(30, 9), r(10, 4)},
			{r(50, 5), r(30, 2)},
		},
		ranks: []int{1, 2, 2},
		want: []rating.Rating{
			r(40.877, 3.840), r(45.493, 2.934),
			r(19.609, 6.396), r(18.712, 5.625), r(29.353, 7.673), r(9.872, 3.891),
			r(48.830, 4.590), r(29.813, 1.976),
		},
		quality: 0.367,
	},
}

// runGolden checks ratings and, when the case records one, match quality.
func runGolden(t *testing.T, calc interface {
	CalculateNewRatings(rating.GameInfo, []*rating.Team, []int) ([]rating.Result, error)
	CalculateMatchQuality(rating.GameInfo, []*rating.Team) (float64, error)
}, cases []golden) {
	t.Helper()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.CalculateNewRatings(tc.info(), tc.roster(), tc.ranks)
			require.NoError(t, err)
			requireResults(t, tc.results(), got, ratingTolerance)

			if tc.quality < 0 {
				return
			}
			quality, err := calc.CalculateMatchQuality(tc.info(), tc.roster())
			require.NoError(t, err)
			require.InDelta(t, tc.quality, quality, qualityTolerance)
		})
	}
}
