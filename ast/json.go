package ast

import (
	"encoding/json"
	"fmt"
)

// jsonGrammar and jsonRule mirror Grammar and Rule but with Production
// replaced by the tagged jsonProduction envelope, which is what
// actually needs custom (de)serialization.
type jsonGrammar struct {
	Name  string     `json:"name"`
	Rules []jsonRule `json:"rules"`
}

type jsonRule struct {
	Name    string         `json:"name"`
	Root    jsonProduction `json:"root"`
	Labeled bool           `json:"labeled"`
	Offsets Offsets        `json:"offsets"`
}

// jsonProduction is the wire form of Production: a "kind" discriminator
// plus whichever payload field that kind uses. Kept flat (rather than
// one json.RawMessage per kind) since every field round-trips through
// encoding/json without needing a second decode pass.
type jsonProduction struct {
	Kind     string           `json:"kind"`
	Literal  string           `json:"literal,omitempty"`
	Name     string           `json:"name,omitempty"`
	Offsets  Offsets          `json:"offsets,omitempty"`
	Elements []jsonProduction `json:"elements,omitempty"`
	Op       string           `json:"op,omitempty"`
	Inner    *jsonProduction  `json:"inner,omitempty"`
}

const (
	kindLiteral  = "literal"
	kindRuleRef  = "ruleRef"
	kindSequence = "sequence"
	kindChoice   = "choice"
	kindUnary    = "unary"
)

func toJSONProduction(p Production) (jsonProduction, error) {
	switch v := p.(type) {
	case Literal:
		return jsonProduction{Kind: kindLiteral, Literal: string(v)}, nil
	case RuleRef:
		return jsonProduction{Kind: kindRuleRef, Name: v.Name, Offsets: v.Offsets}, nil
	case Sequence:
		elems, err := toJSONProductions(v)
		if err != nil {
			return jsonProduction{}, err
		}
		return jsonProduction{Kind: kindSequence, Elements: elems}, nil
	case Choice:
		elems, err := toJSONProductions(v)
		if err != nil {
			return jsonProduction{}, err
		}
		return jsonProduction{Kind: kindChoice, Elements: elems}, nil
	case Unary:
		inner, err := toJSONProduction(v.Inner)
		if err != nil {
			return jsonProduction{}, err
		}
		return jsonProduction{Kind: kindUnary, Op: v.Op.String(), Inner: &inner}, nil
	default:
		return jsonProduction{}, fmt.Errorf("ast: unknown production type %T", p)
	}
}

func toJSONProductions(ps []Production) ([]jsonProduction, error) {
	out := make([]jsonProduction, len(ps))
	for i, p := range ps {
		jp, err := toJSONProduction(p)
		if err != nil {
			return nil, err
		}
		out[i] = jp
	}
	return out, nil
}

func fromJSONProduction(jp jsonProduction) (Production, error) {
	switch jp.Kind {
	case kindLiteral:
		return Literal(jp.Literal), nil
	case kindRuleRef:
		return RuleRef{Name: jp.Name, Offsets: jp.Offsets}, nil
	case kindSequence:
		elems, err := fromJSONProductions(jp.Elements)
		if err != nil {
			return nil, err
		}
		return Sequence(elems), nil
	case kindChoice:
		elems, err := fromJSONProductions(jp.Elements)
		if err != nil {
			return nil, err
		}
		return Choice(elems), nil
	case kindUnary:
		if jp.Inner == nil {
			return nil, fmt.Errorf("ast: unary production missing inner")
		}
		inner, err := fromJSONProduction(*jp.Inner)
		if err != nil {
			return nil, err
		}
		op, err := unaryOpFromString(jp.Op)
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, Inner: inner}, nil
	default:
		return nil, fmt.Errorf("ast: unknown production kind %q", jp.Kind)
	}
}

func fromJSONProductions(jps []jsonProduction) ([]Production, error) {
	out := make([]Production, len(jps))
	for i, jp := range jps {
		p, err := fromJSONProduction(jp)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func unaryOpFromString(s string) (UnaryOp, error) {
	switch s {
	case "*":
		return Star, nil
	case "+":
		return Plus, nil
	case "?":
		return Optional, nil
	default:
		return 0, fmt.Errorf("ast: unknown unary operator %q", s)
	}
}

// MarshalJSON encodes the grammar as the tagged-production wire form
// consumed by cmd/langfuzz in place of the out-of-scope textual
// dialect.
func (g *Grammar) MarshalJSON() ([]byte, error) {
	out := jsonGrammar{Name: g.Name}
	for _, r := range g.Rules {
		root, err := toJSONProduction(r.Root)
		if err != nil {
			return nil, err
		}
		out.Rules = append(out.Rules, jsonRule{
			Name:    r.Name,
			Root:    root,
			Labeled: r.Labeled,
			Offsets: r.Offsets,
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON.
func (g *Grammar) UnmarshalJSON(data []byte) error {
	var in jsonGrammar
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Name = in.Name
	g.Rules = make([]*Rule, len(in.Rules))
	for i, r := range in.Rules {
		root, err := fromJSONProduction(r.Root)
		if err != nil {
			return err
		}
		g.Rules[i] = &Rule{
			Name:    r.Name,
			Root:    root,
			Labeled: r.Labeled,
			Offsets: r.Offsets,
		}
	}
	return nil
}
