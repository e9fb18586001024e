package problem

import "fmt"

// PromptTemplate is the exercise family with the coefficients left
// symbolic, shown on the menu screen.
const PromptTemplate = "lim[x→-1] √( (x + 1) / (x² + cx + b) )"

// Prompt renders the exercise as terminal text.
func Prompt(p Problem) string {
	return fmt.Sprintf("lim[x→-1] √( (x + 1) / (x² + %dx + %d) )", p.C, p.B)
}

// Denominator renders the quadratic as terminal text.
func Denominator(p Problem) string {
	return fmt.Sprintf("x² + %dx + %d", p.C, p.B)
}

// SolutionSteps renders the worked solution, one step per line, in the
// same order as the web version's breakdown.
func SolutionSteps(p Problem) []string {
	_, k := p.Factors()
	return []string{
		fmt.Sprintf("1. Factor the denominator:  x² + %dx + %d = (x + 1)(x + %d)", p.C, p.B, k),
		fmt.Sprintf("2. Cancel the common factor:  (x + 1) / ((x + 1)(x + %d)) = 1 / (x + %d)", k, k),
		fmt.Sprintf("3. Substitute x = -1:  1 / (-1 + %d) = 1/%d   (note %d = %d²)", k, k-1, k-1, p.A),
		fmt.Sprintf("4. Apply the square root:  √(1/%d²) = 1/%d", p.A, p.A),
	}
}

// StrategyHint is the tier-1 cue: name the indeterminate form and
// suggest factoring. Tier selection lives in the session package; the
// wording lives here with the rest of the problem text.
func StrategyHint(p Problem) string {
	return fmt.Sprintf("Substituting x = -1 makes both x + 1 and %s vanish: a 0/0 form. Try factoring the denominator.", Denominator(p))
}

// AlgebraHint is the tier-2 cue: point at the (x+1) common factor.
func AlgebraHint(p Problem) string {
	return fmt.Sprintf("The numerator is (x + 1). Look for an (x + 1) factor in %s.", Denominator(p))
}
