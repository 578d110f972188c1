package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

// FieldType represents the component field a condition looks at
type FieldType string

const (
	FieldName     FieldType = "name"
	FieldTypeName FieldType = "type"
	FieldPriority FieldType = "priority"
)

// Operator represents a comparison or logical operator
type Operator string

const (
	OperatorEquals         Operator = "="
	OperatorContains       Operator = "contains"
	OperatorGreaterThan    Operator = ">"
	OperatorGreaterOrEqual Operator = ">="
	OperatorLessThan       Operator = "<"
	OperatorLessOrEqual    Operator = "<="
	OperatorAND            Operator = "AND"
	OperatorOR             Operator = "OR"
)

// Condition represents a single filter condition
type Condition struct {
	Field    FieldType
	Operator Operator
	Value    string
	Priority int
	Negate   bool
}

// Query is a parsed filter expression. Conditions are combined left to
// right using Logic; there is no precedence between AND and OR.
type Query struct {
	Conditions []Condition
	Logic      []Operator
	Raw        string
}

// Parser parses filter expressions such as
//
//	type:suporte priority:<=3
//	name:motor OR NOT type:"controle remoto"
//
// A bare word matches component names containing it.
type Parser struct {
	fieldPattern    *regexp.Regexp
	quotedPattern   *regexp.Regexp
	priorityPattern *regexp.Regexp
}

// NewParser creates a new filter parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:    regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern:   regexp.MustCompile(`^"([^"]*)"$`),
		priorityPattern: regexp.MustCompile(`^(<=|>=|<|>|=)?(\d+)$`),
	}
}

// Parse parses a filter expression. An empty expression matches everything.
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}
	if err := p.parseTokens(p.tokenize(input), query); err != nil {
		return nil, err
	}
	return query, nil
}

// tokenize splits on spaces outside double quotes
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func (p *Parser) parseTokens(tokens []string, query *Query) error {
	negate := false
	expectCondition := true

	for _, token := range tokens {
		switch strings.ToUpper(token) {
		case "AND", "OR":
			if expectCondition {
				return fmt.Errorf("unexpected operator %s", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			expectCondition = true
			continue
		case "NOT":
			negate = !negate
			continue
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return err
		}
		cond.Negate = negate
		negate = false

		// Adjacent conditions are joined with AND
		if !expectCondition {
			query.Logic = append(query.Logic, OperatorAND)
		}
		query.Conditions = append(query.Conditions, cond)
		expectCondition = false
	}

	if negate {
		return fmt.Errorf("NOT operator requires a condition")
	}
	if expectCondition && len(query.Logic) > 0 {
		return fmt.Errorf("operator %s requires a condition", query.Logic[len(query.Logic)-1])
	}
	return nil
}

// parseCondition parses a single field:value token or a bare word
func (p *Parser) parseCondition(token string) (Condition, error) {
	matches := p.fieldPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return Condition{Field: FieldName, Operator: OperatorContains, Value: p.unquote(token)}, nil
	}

	field := strings.ToLower(matches[1])
	value := p.unquote(matches[2])

	switch field {
	case "name":
		return Condition{Field: FieldName, Operator: OperatorContains, Value: value}, nil
	case "type":
		return Condition{Field: FieldTypeName, Operator: OperatorEquals, Value: value}, nil
	case "priority":
		op, priority, err := p.parsePriorityValue(value)
		if err != nil {
			return Condition{}, err
		}
		return Condition{Field: FieldPriority, Operator: op, Priority: priority, Value: value}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s (must be: name, type, or priority)", field)
	}
}

// parsePriorityValue parses values like "3", "<4" or ">=8"
func (p *Parser) parsePriorityValue(value string) (Operator, int, error) {
	matches := p.priorityPattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return "", 0, fmt.Errorf("invalid priority value: %s (expected format: 3, <4, >=8)", value)
	}

	priority, err := strconv.Atoi(matches[2])
	if err != nil {
		return "", 0, fmt.Errorf("invalid priority value: %s: %w", value, err)
	}

	op := Operator(matches[1])
	if op == "" {
		op = OperatorEquals
	}
	return op, priority, nil
}

func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}

// Match reports whether c satisfies the query
func (q *Query) Match(c models.Component) bool {
	if len(q.Conditions) == 0 {
		return true
	}

	result := q.Conditions[0].match(c)
	for i := 1; i < len(q.Conditions); i++ {
		next := q.Conditions[i].match(c)
		if q.Logic[i-1] == OperatorOR {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

func (cond Condition) match(c models.Component) bool {
	var ok bool
	switch cond.Field {
	case FieldName:
		ok = strings.Contains(c.Name, cond.Value)
	case FieldTypeName:
		ok = c.Type == cond.Value
	case FieldPriority:
		switch cond.Operator {
		case OperatorLessThan:
			ok = c.Priority < cond.Priority
		case OperatorLessOrEqual:
			ok = c.Priority <= cond.Priority
		case OperatorGreaterThan:
			ok = c.Priority > cond.Priority
		case OperatorGreaterOrEqual:
			ok = c.Priority >= cond.Priority
		default:
			ok = c.Priority == cond.Priority
		}
	}
	if cond.Negate {
		return !ok
	}
	return ok
}

// Filter returns the components matching query, in their current order
func Filter(items []models.Component, query *Query) []models.Component {
	matched := make([]models.Component, 0, len(items))
	for _, c := range items {
		if query.Match(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
