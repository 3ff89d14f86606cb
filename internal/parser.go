package internal

// parser stores parser data. It pulls tokens from the lexer one at a
// time and keeps a single token of look-ahead in current.
type parser struct {
	lexer    *lexer
	current  token
	builtins *registry

	// number of tokens consumed, for logging
	scanned int
}

func newParser(source string, builtins *registry) *parser {
	return &parser{
		lexer:    newLexer(source),
		builtins: builtins,
	}
}

// parse builds the whole program. The first error aborts parsing.
func (p *parser) parse() (program *blockStmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			program = nil
			err = parseErr
		}
	}()
	p.advance()
	return p.block(), nil
}

func (p *parser) block() *blockStmt {
	block := &blockStmt{}
	for {
		block.stmts = append(block.stmts, p.statement())
		if p.check(tkEOF) {
			return block
		}
	}
}

func (p *parser) statement() stmt {
	switch p.current.token {
	case tkIf:
		return p.ifStmt()
	case tkFor:
		return p.forStmt()
	case tkFn:
		return p.fn()
	case tkReturn:
		return &returnStmt{
			keyword: p.eat(tkReturn),
			value:   p.comparison(),
		}
	case tkPrint:
		return &printStmt{
			keyword: p.eat(tkPrint),
			value:   p.comparison(),
		}
	}
	return &exprStmt{expression: p.comparison()}
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.eat(tkIf),
	}
	st.condition = p.comparison()
	p.eat(tkThen)
	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	p.eat(tkEnd)
	return st
}

func (p *parser) forStmt() stmt {
	st := &forStmt{
		keyword: p.eat(tkFor),
	}
	st.variable = p.eat(tkIdentifier)
	p.eat(tkEqual)
	st.start = p.expression()
	p.eat(tkTo)
	st.end = p.expression()
	st.body = p.statement()
	p.eat(tkEnd)
	return st
}

func (p *parser) fn() stmt {
	p.eat(tkFn)
	st := &fnStmt{
		name: p.eat(tkIdentifier),
	}
	p.eat(tkLeftParen)
	if !p.check(tkRightParen) {
		st.params = append(st.params, p.eat(tkIdentifier))
		for p.match(tkComma) {
			st.params = append(st.params, p.eat(tkIdentifier))
		}
	}
	p.eat(tkRightParen)
	st.body = p.statement()
	p.eat(tkEnd)
	return st
}

func (p *parser) comparison() expr {
	expr := p.expression()
	for p.check(tkEqualEqual, tkBangEqual, tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.eat(p.current.token)
		right := p.expression()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// expression also accepts '>' and '<' at the same level as '+' and '-',
// so "1 + 2 > 1 + 1" groups as "((1 + 2) > 1) + 1".
func (p *parser) expression() expr {
	expr := p.term()
	for p.check(tkPlus, tkMinus, tkGreater, tkLess) {
		operator := p.eat(p.current.token)
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.check(tkStar, tkSlash) {
		operator := p.eat(p.current.token)
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	switch p.current.token {
	case tkNumber:
		number := p.eat(tkNumber)
		return &literalExpr{value: number.literal.(float64)}
	case tkIdentifier:
		name := p.eat(tkIdentifier)
		if p.match(tkEqual) {
			return &assignExpr{
				name:  name,
				value: p.expression(),
			}
		}
		if p.check(tkLeftParen) {
			return p.call(name)
		}
		return &variableExpr{name: name}
	case tkLeftParen:
		p.eat(tkLeftParen)
		expr := p.expression()
		p.eat(tkRightParen)
		return expr
	}
	p.fatalError(detailf(errUnexpectedToken, "expected `expression`, got `%s`", p.current.token))
	return nil
}

// call resolves the callee once, here: builtin names win over user functions
// regardless of what the program defines later.
func (p *parser) call(name *token) expr {
	p.eat(tkLeftParen)
	arguments := p.arguments()
	p.eat(tkRightParen)

	if !p.builtins.isBuiltin(name.lexeme) {
		return &callExpr{
			name:      name,
			arguments: arguments,
		}
	}

	if name.lexeme == "format" {
		if len(arguments) < 1 || len(arguments) > 2 {
			p.fatalError(detailf(
				errInvalidNumberArguments,
				"built-in function `format` expects 1 to 2 arguments, got %d",
				len(arguments),
			))
		}
		format := &formatExpr{
			name:  name,
			value: arguments[0],
		}
		if len(arguments) == 2 {
			format.decimals = arguments[1]
		}
		return format
	}

	return &builtinCallExpr{
		name:      name,
		arguments: arguments,
	}
}

func (p *parser) arguments() []expr {
	arguments := make([]expr, 0)
	if p.check(tkRightParen) {
		return arguments
	}
	arguments = append(arguments, p.expression())
	for p.match(tkComma) {
		arguments = append(arguments, p.expression())
	}
	return arguments
}

// eat consumes the current token when it has the expected kind
func (p *parser) eat(tk tokenType) *token {
	if p.current.token != tk {
		p.fatalError(detailf(errUnexpectedToken, "expected `%s`, got `%s`", tk, p.current.token))
	}
	consumed := p.current
	p.advance()
	return &consumed
}

func (p *parser) advance() {
	tk, err := p.lexer.nextToken()
	if err != nil {
		panic(err)
	}
	if tk.token != tkEOF {
		p.scanned++
	}
	p.current = tk
}

func (p *parser) match(tk tokenType) bool {
	if p.check(tk) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.current.token == tk {
			return true
		}
	}
	return false
}

func (p *parser) fatalError(err error) {
	panic(&Error{
		Kind:       SyntaxError,
		Line:       p.current.line,
		Err:        err,
		incomplete: p.current.token == tkEOF,
	})
}
