package parser

import "winzigc/pkg/token"

// kindSet is a FIRST set used to pick between alternatives
type kindSet []token.Kind

func (ks kindSet) has(kind token.Kind) bool {
	for _, k := range ks {
		if k == kind {
			return true
		}
	}
	return false
}

var (
	constValueFirst = kindSet{token.Integer, token.Char, token.Identifier}

	primaryFirst = kindSet{
		token.Minus, token.Plus, token.Not, token.EOFKeyword,
		token.Identifier, token.Integer, token.Char, token.LParen,
		token.Succ, token.Pred, token.Chr, token.Ord,
	}

	outExpFirst = kindSet{
		token.String,
		token.Minus, token.Plus, token.Not, token.EOFKeyword,
		token.Identifier, token.Integer, token.Char, token.LParen,
		token.Succ, token.Pred, token.Chr, token.Ord,
	}
)
