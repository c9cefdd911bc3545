// SPDX-License-Identifier: MIT

package trueskill

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/trueskill/factorgraph"
	"github.com/katalvlaran/trueskill/gaussian"
)

// priorFactor pins a skill variable to N(μ, σ²+τ²).
type priorFactor struct {
	*factorgraph.FactorBase
	belief gaussian.Distribution
}

func newPriorFactor(arena *factorgraph.Arena, skill factorgraph.VariableID, mean, variance float64) *priorFactor {
	f := &priorFactor{
		FactorBase: factorgraph.NewFactorBase("prior going to "+arena.Variable(skill).Name, arena),
		belief:     gaussian.New(mean, math.Sqrt(variance)),
	}
	f.Bind(skill)

	return f
}

// UpdateMessage swaps the old message for the prior inside the marginal.
func (f *priorFactor) UpdateMessage(i int) (float64, error) {
	if err := f.CheckIndex(i); err != nil {
		return 0, err
	}
	old := f.Marginal(0)
	oldMsg := f.Message(0)
	updated := gaussian.FromPrecisionMean(
		old.PrecisionMean()+f.belief.PrecisionMean()-oldMsg.PrecisionMean(),
		old.Precision()+f.belief.Precision()-oldMsg.Precision(),
	)
	f.SetMarginal(0, updated)
	f.SetMessage(0, f.belief)

	return gaussian.AbsoluteDifference(old, updated), nil
}

// LogNormalization is zero: the prior is already normalised.
func (f *priorFactor) LogNormalization() (float64, error) { return 0, nil }

// likelihoodFactor links a performance (message 0) to a skill (message 1)
// with β² of Gaussian noise.
type likelihoodFactor struct {
	*factorgraph.FactorBase
	precision float64
}

func newLikelihoodFactor(arena *factorgraph.Arena, performance, skill factorgraph.VariableID, betaSquared float64) *likelihoodFactor {
	f := &likelihoodFactor{
		FactorBase: factorgraph.NewFactorBase(fmt.Sprintf("likelihood of %s going to %s",
			arena.Variable(skill).Name, arena.Variable(performance).Name), arena),
		precision: 1 / betaSquared,
	}
	f.Bind(performance)
	f.Bind(skill)

	return f
}

// UpdateMessage implements factorgraph.Factor.
func (f *likelihoodFactor) UpdateMessage(i int) (float64, error) {
	switch i {
	case 0:
		return f.update(0, 1), nil
	case 1:
		return f.update(1, 0), nil
	default:
		return 0, f.CheckIndex(i)
	}
}

// update recomputes message to from the cavity of message from: the cavity
// belief widened by β².
func (f *likelihoodFactor) update(to, from int) float64 {
	oldMarginal := f.Marginal(to)
	fromMarginal := f.Marginal(from)
	fromMsg := f.Message(from)

	cavityPrecision := fromMarginal.Precision() - fromMsg.Precision()
	a := f.precision / (f.precision + cavityPrecision)
	newMsg := gaussian.FromPrecisionMean(
		a*(fromMarginal.PrecisionMean()-fromMsg.PrecisionMean()),
		a*cavityPrecision,
	)
	newMarginal := gaussian.Mul(gaussian.Div(oldMarginal, f.Message(to)), newMsg)
	f.SetMessage(to, newMsg)
	f.SetMarginal(to, newMarginal)

	return gaussian.AbsoluteDifference(newMarginal, oldMarginal)
}

// LogNormalization implements factorgraph.Factor.
func (f *likelihoodFactor) LogNormalization() (float64, error) {
	return gaussian.LogRatioNormalization(f.Marginal(0), f.Message(0))
}

// weightedSumFactor constrains sum = Σ wᵢ·termᵢ. The sum is bound first,
// the terms after it in order.
//
// Updating message i solves the same constraint for variable i: for a term,
// term_i = sum/w_i − Σ_{k≠i} (w_k/w_i)·term_k. weights[i] and order[i] hold
// that rearrangement, order[i][0] = i being the target.
type weightedSumFactor struct {
	*factorgraph.FactorBase
	weights        [][]float64
	weightsSquared [][]float64
	order          [][]int
}

func newWeightedSumFactor(arena *factorgraph.Arena, sum factorgraph.VariableID, terms []factorgraph.VariableID, weights []float64) *weightedSumFactor {
	f := &weightedSumFactor{
		FactorBase: factorgraph.NewFactorBase(weightedSumName(arena, sum, terms, weights), arena),
	}
	f.Bind(sum)
	for _, id := range terms {
		f.Bind(id)
	}

	n := len(terms)
	f.weights = make([][]float64, n+1)
	f.order = make([][]int, n+1)

	f.weights[0] = append([]float64(nil), weights...)
	f.order[0] = make([]int, n+1)
	for i := range f.order[0] {
		f.order[0][i] = i
	}

	for i := 1; i <= n; i++ {
		wi := weights[i-1]
		row := make([]float64, 0, n)
		order := make([]int, 0, n+1)
		order = append(order, i)
		for k, wk := range weights {
			if k == i-1 {
				continue
			}
			if wi == 0 {
				row = append(row, 0)
			} else {
				row = append(row, -wk/wi)
			}
			order = append(order, k+1)
		}
		if wi == 0 {
			row = append(row, 0)
		} else {
			row = append(row, 1/wi)
		}
		order = append(order, 0)
		f.weights[i] = row
		f.order[i] = order
	}

	f.weightsSquared = make([][]float64, n+1)
	for i, row := range f.weights {
		sq := make([]float64, len(row))
		for k, w := range row {
			sq[k] = w * w
		}
		f.weightsSquared[i] = sq
	}

	return f
}

// weightedSumName renders "sum = 1.00*(a) + -1.00*(b)".
func weightedSumName(arena *factorgraph.Arena, sum factorgraph.VariableID, terms []factorgraph.VariableID, weights []float64) string {
	var sb strings.Builder
	sb.WriteString(arena.Variable(sum).Name)
	sb.WriteString(" = ")
	for i, id := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%.2f*(%s)", weights[i], arena.Variable(id).Name)
	}

	return sb.String()
}

// UpdateMessage implements factorgraph.Factor.
//
// Implementation:
//   - Stage 1: for every other variable j of the rearranged constraint, take
//     its cavity (marginal ÷ message) and accumulate w²/p and w·pm/p.
//   - Stage 2: the new message has precision 1/Σ(w²/p) and precision mean
//     precision·Σ(w·pm/p).
//   - Stage 3: swap the old message for the new one inside the target marginal.
//
// A non-zero weight on a flat cavity carries no information, so the message
// becomes flat instead of dividing by zero.
func (f *weightedSumFactor) UpdateMessage(i int) (float64, error) {
	if err := f.CheckIndex(i); err != nil {
		return 0, err
	}
	weights := f.weights[i]
	weightsSquared := f.weightsSquared[i]
	order := f.order[i]

	var inversePrecisionSum, weightedMeanSum float64
	informative := true
	for k, w := range weights {
		if w == 0 {
			continue
		}
		j := order[k+1]
		marginal := f.Marginal(j)
		msg := f.Message(j)
		cavityPrecision := marginal.Precision() - msg.Precision()
		if cavityPrecision == 0 {
			informative = false
			break
		}
		inversePrecisionSum += weightsSquared[k] / cavityPrecision
		weightedMeanSum += w * (marginal.PrecisionMean() - msg.PrecisionMean()) / cavityPrecision
	}

	newMsg := gaussian.Flat()
	if informative && inversePrecisionSum != 0 {
		newPrecision := 1 / inversePrecisionSum
		newMsg = gaussian.FromPrecisionMean(newPrecision*weightedMeanSum, newPrecision)
	}

	target := order[0]
	oldMarginal := f.Marginal(target)
	newMarginal := gaussian.Mul(gaussian.Div(oldMarginal, f.Message(target)), newMsg)
	f.SetMessage(target, newMsg)
	f.SetMarginal(target, newMarginal)

	return gaussian.AbsoluteDifference(newMarginal, oldMarginal), nil
}

// LogNormalization sums the ratio normalisations of the terms; the sum
// variable does not contribute.
func (f *weightedSumFactor) LogNormalization() (float64, error) {
	var result float64
	for i := 1; i < f.NumMessages(); i++ {
		logZ, err := gaussian.LogRatioNormalization(f.Marginal(i), f.Message(i))
		if err != nil {
			return 0, err
		}
		result += logZ
	}

	return result, nil
}

// truncation selects the correction pair applied by a comparison factor.
type truncation struct {
	v func(t, epsilon float64) float64
	w func(t, epsilon float64) float64
}

var (
	exceedsTruncation = truncation{v: gaussian.VExceedsMargin, w: gaussian.WExceedsMargin}
	withinTruncation  = truncation{v: gaussian.VWithinMargin, w: gaussian.WWithinMargin}
)

// comparisonFactor is the shared body of greaterThanFactor and withinFactor:
// it truncates its single variable and moment-matches the result.
type comparisonFactor struct {
	*factorgraph.FactorBase
	epsilon float64
	trunc   truncation
}

func newComparisonFactor(arena *factorgraph.Arena, name string, difference factorgraph.VariableID, epsilon float64, trunc truncation) comparisonFactor {
	f := comparisonFactor{
		FactorBase: factorgraph.NewFactorBase(name, arena),
		epsilon:    epsilon,
		trunc:      trunc,
	}
	f.Bind(difference)

	return f
}

// UpdateMessage implements factorgraph.Factor. With a flat cavity there is
// nothing to truncate and the message is left as is.
func (f *comparisonFactor) UpdateMessage(i int) (float64, error) {
	if err := f.CheckIndex(i); err != nil {
		return 0, err
	}
	oldMarginal := f.Marginal(0)
	oldMsg := f.Message(0)
	cavity := gaussian.Div(oldMarginal, oldMsg)

	c := cavity.Precision()
	if c == 0 {
		return 0, nil
	}
	d := cavity.PrecisionMean()
	sqrtC := math.Sqrt(c)
	t := d / sqrtC
	epsilon := f.epsilon * sqrtC

	denominator := 1 - f.trunc.w(t, epsilon)
	if !(denominator > 0) {
		return 0, fmt.Errorf("%s: %w", f.Name(), ErrDegenerateComparison)
	}
	newMarginal := gaussian.FromPrecisionMean((d+sqrtC*f.trunc.v(t, epsilon))/denominator, c/denominator)
	newMsg := gaussian.Div(gaussian.Mul(oldMsg, newMarginal), oldMarginal)
	f.SetMessage(0, newMsg)
	f.SetMarginal(0, newMarginal)

	return gaussian.AbsoluteDifference(newMarginal, oldMarginal), nil
}

// cavity returns the variable's belief without this factor's message.
func (f *comparisonFactor) cavity() gaussian.Distribution {
	return gaussian.Div(f.Marginal(0), f.Message(0))
}

// greaterThanFactor observes difference > ε: the better-ranked team won.
type greaterThanFactor struct {
	comparisonFactor
}

func newGreaterThanFactor(arena *factorgraph.Arena, difference factorgraph.VariableID, epsilon float64) *greaterThanFactor {
	name := fmt.Sprintf("%s > %.3f", arena.Variable(difference).Name, epsilon)
	return &greaterThanFactor{newComparisonFactor(arena, name, difference, epsilon, exceedsTruncation)}
}

// LogNormalization implements factorgraph.Factor.
func (f *greaterThanFactor) LogNormalization() (float64, error) {
	cavity := f.cavity()
	if cavity.IsFlat() {
		return 0, nil
	}
	logZ := -gaussian.LogProductNormalization(cavity, f.Message(0))
	p := gaussian.CumulativeTo((cavity.Mean() - f.epsilon) / cavity.StandardDeviation())

	return logZ + math.Log(p), nil
}

// withinFactor observes |difference| ≤ ε: a draw.
type withinFactor struct {
	comparisonFactor
}

func newWithinFactor(arena *factorgraph.Arena, difference factorgraph.VariableID, epsilon float64) *withinFactor {
	name := fmt.Sprintf("%s <= %.3f", arena.Variable(difference).Name, epsilon)
	return &withinFactor{newComparisonFactor(arena, name, difference, epsilon, withinTruncation)}
}

// LogNormalization implements factorgraph.Factor.
func (f *withinFactor) LogNormalization() (float64, error) {
	cavity := f.cavity()
	if cavity.IsFlat() {
		return 0, nil
	}
	logZ := -gaussian.LogProductNormalization(cavity, f.Message(0))
	mean, stddev := cavity.Mean(), cavity.StandardDeviation()
	p := gaussian.CumulativeTo((f.epsilon-mean)/stddev) - gaussian.CumulativeTo((-f.epsilon-mean)/stddev)

	return logZ + math.Log(p), nil
}
