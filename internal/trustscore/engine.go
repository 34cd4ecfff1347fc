package trustscore

// Engine evaluates the per-kind rule tables and produces factor
// breakdowns. It is pure: all persistence (base score, ledger
// summation, clamping and the entity write-back) happens in the
// service-layer recompute that drives it.
type Engine struct {
	rules map[EntityKind][]Rule
}

// NewEngine creates an engine with the built-in rule tables
func NewEngine() *Engine {
	return &Engine{
		rules: map[EntityKind][]Rule{
			KindProject:  ProjectRules(),
			KindBusiness: BusinessRules(),
		},
	}
}

// Rules returns the rule table for an entity kind, in evaluation order
func (e *Engine) Rules(kind EntityKind) []Rule {
	return e.rules[kind]
}

// Evaluate runs every rule for the entity's kind in table order and
// returns the factor breakdown plus the summed rule points. Per-rule
// results are not clamped; rules are trusted to stay within their
// declared maximum.
func (e *Engine) Evaluate(entity Entity, ctx *Context) ([]ScoreFactor, int) {
	table := e.rules[entity.Kind]
	factors := make([]ScoreFactor, 0, len(table))
	total := 0

	for _, rule := range table {
		points := rule.Evaluate(entity, ctx)
		total += points
		factors = append(factors, ScoreFactor{
			Name:        rule.Name,
			Points:      points,
			MaxPoints:   rule.MaxPoints,
			Achieved:    points > 0,
			Description: rule.Description,
		})
	}

	return factors, total
}
