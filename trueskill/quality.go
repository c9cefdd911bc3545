// SPDX-License-Identifier: MIT

package trueskill

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/trueskill/matrix"
	"github.com/katalvlaran/trueskill/rating"
)

// matchQuality is the draw probability of any number of teams, teams taken
// in input order.
//
// With μ the mean vector, Σ the diagonal skill covariance and A the
// players × (teams−1) matrix whose column i holds +w for team i's members
// and −w for team i+1's (w being partial play):
//
//	quality = exp(−½·μᵀA·(β²AᵀA + AᵀΣA)⁻¹·Aᵀμ) · √(det(β²AᵀA) / det(β²AᵀA + AᵀΣA))
func matchQuality(gameInfo rating.GameInfo, teams []*rating.Team) (float64, error) {
	members := lo.FlatMap(teams, func(t *rating.Team, _ int) []rating.Member { return t.Members() })
	means := lo.Map(members, func(m rating.Member, _ int) float64 { return m.Rating.Mean })
	variances := lo.Map(members, func(m rating.Member, _ int) float64 { return m.Rating.Variance() })

	mean, err := matrix.NewColumn(means)
	if err != nil {
		return 0, err
	}
	skills, err := matrix.NewDiagonal(variances)
	if err != nil {
		return 0, err
	}
	a, err := playerTeamAssignments(teams, len(members))
	if err != nil {
		return 0, err
	}
	aT, err := matrix.Transpose(a)
	if err != nil {
		return 0, err
	}
	meanT, err := matrix.Transpose(mean)
	if err != nil {
		return 0, err
	}

	// β²·AᵀA
	aTa, err := matrix.Mul(aT, a)
	if err != nil {
		return 0, err
	}
	if aTa, err = matrix.Scale(aTa, gameInfo.Beta*gameInfo.Beta); err != nil {
		return 0, err
	}

	// AᵀΣA
	aTS, err := matrix.Mul(aT, skills)
	if err != nil {
		return 0, err
	}
	aTSA, err := matrix.Mul(aTS, a)
	if err != nil {
		return 0, err
	}

	middle, err := matrix.Add(aTa, aTSA)
	if err != nil {
		return 0, err
	}
	middleInverse, err := matrix.Inverse(middle)
	if err != nil {
		return 0, fmt.Errorf("match quality: %w", err)
	}

	// −½·μᵀA·middle⁻¹·Aᵀμ, a 1×1 matrix
	start, err := matrix.Mul(meanT, a)
	if err != nil {
		return 0, err
	}
	end, err := matrix.Mul(aT, mean)
	if err != nil {
		return 0, err
	}
	startMiddle, err := matrix.Mul(start, middleInverse)
	if err != nil {
		return 0, err
	}
	exponent, err := matrix.Mul(startMiddle, end)
	if err != nil {
		return 0, err
	}
	expPart, err := exponent.At(0, 0)
	if err != nil {
		return 0, err
	}

	numerator, err := matrix.Determinant(aTa)
	if err != nil {
		return 0, err
	}
	denominator, err := matrix.Determinant(middle)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, fmt.Errorf("match quality: %w", matrix.ErrSingular)
	}

	return math.Exp(-0.5*expPart) * math.Sqrt(numerator/denominator), nil
}

// playerTeamAssignments builds A column by column. Column i starts with a
// zero for every player before team i, so shorter columns are zero-padded
// to the full player count.
func playerTeamAssignments(teams []*rating.Team, players int) (*matrix.Dense, error) {
	columns := make([][]float64, 0, len(teams)-1)
	skipped := 0
	for i := 0; i < len(teams)-1; i++ {
		current, next := teams[i], teams[i+1]
		column := make([]float64, skipped, skipped+current.Size()+next.Size())
		for _, m := range current.Members() {
			column = append(column, rating.PartialPlayPercentage(m.Player))
		}
		for _, m := range next.Members() {
			column = append(column, -rating.PartialPlayPercentage(m.Player))
		}
		skipped += current.Size()
		columns = append(columns, column)
	}

	return matrix.NewFromColumns(players, columns)
}
