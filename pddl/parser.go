package pddl

// Parser is a recursive-descent reader over a Lexer's token stream,
// producing one Node tree per top-level s-expression. The grammar at this
// layer is fully generic (a Node is just "atom" or "parenthesized list of
// Nodes"); domain.go/problem.go interpret the resulting tree.
type Parser struct {
	lex *Lexer
	tok token
}

// NewParser returns a Parser reading src from the start.
func NewParser(src string) *Parser {
	p := &Parser{lex: NewLexer(src)}
	p.advance()
	return p
}

func (p *Parser) advance() { p.tok = p.lex.Next() }

// ParseTop parses exactly one top-level s-expression and requires the
// remaining input be empty (aside from trailing whitespace/comments,
// already swallowed by the lexer).
func (p *Parser) ParseTop() (*Node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Expected: "EOF", Got: p.tok.kind.String(), Line: p.tok.line, Col: p.tok.col}
	}
	return n, nil
}

func (p *Parser) parseExpr() (*Node, error) {
	switch p.tok.kind {
	case tokLParen:
		line, col := p.tok.line, p.tok.col
		p.advance()
		var items []*Node
		for p.tok.kind != tokRParen {
			if p.tok.kind == tokEOF || p.tok.kind == tokError {
				return nil, &ParseError{Expected: "')'", Got: p.tok.kind.String(), Line: p.tok.line, Col: p.tok.col}
			}
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		p.advance() // consume ')'
		return &Node{List: items, Line: line, Col: col}, nil
	case tokSymbol:
		n := &Node{Atom: p.tok.text, Line: p.tok.line, Col: p.tok.col}
		p.advance()
		return n, nil
	default:
		return nil, &ParseError{Expected: "'(' or symbol", Got: p.tok.kind.String(), Line: p.tok.line, Col: p.tok.col}
	}
}
