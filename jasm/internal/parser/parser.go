package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/errors"
	"github.com/probekit/jvm-flow/jasm/internal/token"
)

// Parser builds a method body from a token stream. Labels are resolved by
// name within one listing; forward references are created on first use
// and checked for a definition once the listing ends.
type Parser struct {
	tokens     []token.Token
	labels     map[string]*bytecode.Label
	defined    map[string]bool
	referenced map[string]int
	body       *bytecode.MethodBody
	pos        int
	synthetic  int
}

// New creates a parser over a token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens:     tokens,
		labels:     make(map[string]*bytecode.Label),
		defined:    make(map[string]bool),
		referenced: make(map[string]int),
		body:       &bytecode.MethodBody{},
	}
}

// Parse consumes the whole token stream and returns the assembled body.
func (p *Parser) Parse() (*bytecode.MethodBody, error) {
	for p.pos < len(p.tokens) {
		if err := p.statement(); err != nil {
			return nil, err
		}
	}

	for name, line := range p.referenced {
		if !p.defined[name] {
			return nil, errors.ParseFailed(line, fmt.Sprintf("label %s is never defined", name))
		}
	}

	return p.body, nil
}

func (p *Parser) statement() error {
	tok := p.tokens[p.pos]
	switch tok.Type {
	case token.Newline:
		p.pos++
		return nil

	case token.Directive:
		return p.directive(tok)

	case token.LabelDef:
		name := strings.TrimSuffix(tok.Value, ":")
		if p.defined[name] {
			return errors.ParseFailed(tok.Line, fmt.Sprintf("label %s defined twice", name))
		}
		p.defined[name] = true
		p.append(bytecode.LabelAt(p.label(name, tok.Line)))
		p.pos++
		return p.endStatement()

	case token.Word:
		return p.instruction(tok)
	}

	return errors.ParseFailed(tok.Line, fmt.Sprintf("unexpected %s %q", tok.Type, tok.Value))
}

func (p *Parser) directive(tok token.Token) error {
	p.pos++
	switch tok.Value {
	case ".method":
		name, err := p.word()
		if err != nil {
			return err
		}
		p.body.Name = name
		return p.endStatement()

	case ".catch":
		start, err := p.labelRef()
		if err != nil {
			return err
		}
		end, err := p.labelRef()
		if err != nil {
			return err
		}
		handler, err := p.labelRef()
		if err != nil {
			return err
		}
		tc := bytecode.TryCatchBlock{Start: start, End: end, Handler: handler}
		if !p.atNewline() {
			tc.Type, _ = p.word()
		}
		p.body.TryCatch = append(p.body.TryCatch, tc)
		return p.endStatement()
	}
	return errors.ParseFailed(tok.Line, fmt.Sprintf("unknown directive %q", tok.Value))
}

func (p *Parser) instruction(tok token.Token) error {
	p.pos++
	switch tok.Value {
	case "line":
		return p.lineMarker(tok)
	case "frame":
		return p.frame(tok)
	}

	op, ok := bytecode.OpcodeByMnemonic(tok.Value)
	if !ok {
		return errors.ParseFailed(tok.Line, fmt.Sprintf("unknown mnemonic %q", tok.Value))
	}

	insn, err := p.operands(op, tok)
	if err != nil {
		return err
	}
	p.append(insn)
	return p.endStatement()
}

// lineMarker binds a line number to the label immediately preceding it,
// synthesizing one if the previous stream element is not a label.
func (p *Parser) lineMarker(tok token.Token) error {
	n, err := p.number()
	if err != nil {
		return err
	}

	var start *bytecode.Label
	if len(p.body.Instructions) > 0 {
		if l, ok := p.body.Instructions[len(p.body.Instructions)-1].Label(); ok {
			start = l
		}
	}
	if start == nil {
		p.synthetic++
		start = bytecode.NewLabel(fmt.Sprintf("#line%d", p.synthetic))
		p.append(bytecode.LabelAt(start))
	}

	p.append(bytecode.Line(int(n), start))
	return p.endStatement()
}

// frame parses "frame same" or "frame stack <item...>", where an item
// prefixed with '@' is a label reference (an uninitialized-value
// placeholder) and any other item is a verification type name.
func (p *Parser) frame(tok token.Token) error {
	form, err := p.word()
	if err != nil {
		return err
	}

	switch form {
	case "same":
		p.append(bytecode.Frame(bytecode.FrameSame, nil, nil))
		return p.endStatement()

	case "stack":
		var stack []interface{}
		for !p.atNewline() {
			item, err := p.word()
			if err != nil {
				return err
			}
			if strings.HasPrefix(item, "@") {
				stack = append(stack, p.label(item[1:], tok.Line))
			} else {
				stack = append(stack, item)
			}
		}
		kind := bytecode.FrameFull
		if len(stack) == 1 {
			kind = bytecode.FrameSame1
		}
		p.append(bytecode.Frame(kind, nil, stack))
		return p.endStatement()
	}
	return errors.ParseFailed(tok.Line, fmt.Sprintf("unknown frame form %q", form))
}

func (p *Parser) operands(op int16, tok token.Token) (bytecode.Instruction, error) {
	switch {
	case bytecode.Classify(op) == bytecode.ClassGoto,
		bytecode.Classify(op) == bytecode.ClassCondJump,
		op == bytecode.OpJsr, op == bytecode.OpJsrW:
		target, err := p.labelRef()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Jump(op, target), nil

	case op == bytecode.OpTableSwitch:
		return p.tableSwitch(op, tok)

	case op == bytecode.OpLookupSwitch:
		return p.lookupSwitch(op, tok)

	case op == bytecode.OpILoad, op == bytecode.OpLLoad, op == bytecode.OpFLoad,
		op == bytecode.OpDLoad, op == bytecode.OpALoad,
		op == bytecode.OpIStore, op == bytecode.OpLStore, op == bytecode.OpFStore,
		op == bytecode.OpDStore, op == bytecode.OpAStore, op == bytecode.OpRet:
		n, err := p.number()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.VarImm{Index: int(n)}}, nil

	case op == bytecode.OpBIPush, op == bytecode.OpSIPush, op == bytecode.OpNewArray:
		n, err := p.number()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.IntImm{Value: int32(n)}}, nil

	case op == bytecode.OpIInc:
		idx, err := p.number()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		incr, err := p.number()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.IincImm{Index: int(idx), Increment: int(incr)}}, nil

	case op == bytecode.OpLdc, op == bytecode.OpLdcW, op == bytecode.OpLdc2W:
		w, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		var value interface{} = w
		if n, err := strconv.ParseInt(w, 10, 64); err == nil {
			value = n
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.LdcImm{Value: value}}, nil

	case op == bytecode.OpInvokeVirtual, op == bytecode.OpInvokeSpecial,
		op == bytecode.OpInvokeStatic, op == bytecode.OpInvokeInterface:
		ref, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		imm, err := parseMethodRef(ref, tok.Line)
		if err != nil {
			return bytecode.Instruction{}, err
		}
		imm.Interface = op == bytecode.OpInvokeInterface
		return bytecode.Instruction{Opcode: op, Imm: imm}, nil

	case op == bytecode.OpInvokeDynamic:
		name, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		desc, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.InvokeDynamicImm{Name: name, Desc: desc}}, nil

	case op == bytecode.OpGetStatic, op == bytecode.OpPutStatic,
		op == bytecode.OpGetField, op == bytecode.OpPutField:
		ref, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		desc, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		dot := strings.LastIndex(ref, ".")
		if dot < 0 {
			return bytecode.Instruction{}, errors.ParseFailed(tok.Line,
				fmt.Sprintf("field reference %q must be Owner.name", ref))
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.FieldImm{
			Owner: ref[:dot], Name: ref[dot+1:], Desc: desc,
		}}, nil

	case op == bytecode.OpNew, op == bytecode.OpANewArray,
		op == bytecode.OpCheckCast, op == bytecode.OpInstanceOf:
		typ, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.TypeImm{Type: typ}}, nil

	case op == bytecode.OpMultiANewArray:
		desc, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		dims, err := p.number()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		return bytecode.Instruction{Opcode: op, Imm: bytecode.MultiANewArrayImm{Desc: desc, Dims: int(dims)}}, nil
	}

	return bytecode.Insn(op), nil
}

// tableSwitch parses "tableswitch <min> <max> default <L> <L...>".
func (p *Parser) tableSwitch(op int16, tok token.Token) (bytecode.Instruction, error) {
	min, err := p.number()
	if err != nil {
		return bytecode.Instruction{}, err
	}
	max, err := p.number()
	if err != nil {
		return bytecode.Instruction{}, err
	}
	if err := p.keyword("default"); err != nil {
		return bytecode.Instruction{}, err
	}
	dflt, err := p.labelRef()
	if err != nil {
		return bytecode.Instruction{}, err
	}
	var labels []*bytecode.Label
	for !p.atNewline() {
		l, err := p.labelRef()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		labels = append(labels, l)
	}
	if len(labels) != int(max-min+1) {
		return bytecode.Instruction{}, errors.ParseFailed(tok.Line,
			fmt.Sprintf("tableswitch needs %d case labels, got %d", max-min+1, len(labels)))
	}
	return bytecode.Instruction{Opcode: op, Imm: bytecode.TableSwitchImm{
		Min: int32(min), Max: int32(max), Default: dflt, Labels: labels,
	}}, nil
}

// lookupSwitch parses "lookupswitch default <L> <key>:<L> ...".
func (p *Parser) lookupSwitch(op int16, tok token.Token) (bytecode.Instruction, error) {
	if err := p.keyword("default"); err != nil {
		return bytecode.Instruction{}, err
	}
	dflt, err := p.labelRef()
	if err != nil {
		return bytecode.Instruction{}, err
	}
	var keys []int32
	var labels []*bytecode.Label
	for !p.atNewline() {
		pair, err := p.word()
		if err != nil {
			return bytecode.Instruction{}, err
		}
		key, name, ok := strings.Cut(pair, ":")
		if !ok {
			return bytecode.Instruction{}, errors.ParseFailed(tok.Line,
				fmt.Sprintf("lookupswitch case %q must be key:label", pair))
		}
		k, err2 := strconv.ParseInt(key, 10, 32)
		if err2 != nil {
			return bytecode.Instruction{}, errors.ParseFailed(tok.Line,
				fmt.Sprintf("lookupswitch key %q is not an integer", key))
		}
		keys = append(keys, int32(k))
		labels = append(labels, p.label(name, tok.Line))
	}
	return bytecode.Instruction{Opcode: op, Imm: bytecode.LookupSwitchImm{
		Keys: keys, Default: dflt, Labels: labels,
	}}, nil
}

func (p *Parser) append(insn bytecode.Instruction) {
	p.body.Instructions = append(p.body.Instructions, insn)
}

// label returns the shared label for a name, creating it on first use and
// recording the reference for the dangling-label check.
func (p *Parser) label(name string, line int) *bytecode.Label {
	l, ok := p.labels[name]
	if !ok {
		l = bytecode.NewLabel(name)
		p.labels[name] = l
	}
	if _, seen := p.referenced[name]; !seen {
		p.referenced[name] = line
	}
	return l
}

func (p *Parser) labelRef() (*bytecode.Label, error) {
	tok, err := p.take(token.Word)
	if err != nil {
		return nil, err
	}
	return p.label(tok.Value, tok.Line), nil
}

func (p *Parser) word() (string, error) {
	tok, err := p.take(token.Word)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

func (p *Parser) number() (int64, error) {
	tok, err := p.take(token.Number)
	if err != nil {
		return 0, err
	}
	n, err2 := strconv.ParseInt(tok.Value, 10, 64)
	if err2 != nil {
		return 0, errors.ParseFailed(tok.Line, fmt.Sprintf("bad number %q", tok.Value))
	}
	return n, nil
}

func (p *Parser) keyword(want string) error {
	tok, err := p.take(token.Word)
	if err != nil {
		return err
	}
	if tok.Value != want {
		return errors.ParseFailed(tok.Line, fmt.Sprintf("expected %q, got %q", want, tok.Value))
	}
	return nil
}

func (p *Parser) take(want token.Type) (token.Token, error) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, errors.ParseFailed(p.lastLine(), "unexpected end of listing")
	}
	tok := p.tokens[p.pos]
	if tok.Type != want && !(want == token.Word && tok.Type == token.Number) {
		return token.Token{}, errors.ParseFailed(tok.Line,
			fmt.Sprintf("expected %s, got %s %q", want, tok.Type, tok.Value))
	}
	p.pos++
	return tok, nil
}

func (p *Parser) atNewline() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Type == token.Newline
}

func (p *Parser) endStatement() error {
	if p.pos >= len(p.tokens) {
		return nil
	}
	tok := p.tokens[p.pos]
	if tok.Type != token.Newline {
		return errors.ParseFailed(tok.Line, fmt.Sprintf("trailing %s %q", tok.Type, tok.Value))
	}
	p.pos++
	return nil
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Line
}

func parseMethodRef(ref string, line int) (bytecode.MethodImm, error) {
	paren := strings.Index(ref, "(")
	if paren < 0 {
		return bytecode.MethodImm{}, errors.ParseFailed(line,
			fmt.Sprintf("method reference %q must be Owner.name(desc)", ref))
	}
	qualified, desc := ref[:paren], ref[paren:]
	dot := strings.LastIndex(qualified, ".")
	if dot < 0 {
		return bytecode.MethodImm{}, errors.ParseFailed(line,
			fmt.Sprintf("method reference %q must be Owner.name(desc)", ref))
	}
	return bytecode.MethodImm{
		Owner: qualified[:dot],
		Name:  qualified[dot+1:],
		Desc:  desc,
	}, nil
}
