package engine

import (
	"fmt"
	"testing"

	"github.com/probekit/jvm-flow/bytecode"
	"github.com/probekit/jvm-flow/jasm"
	"github.com/probekit/jvm-flow/probe"
)

const maxSrc = `
.method max
entry:
iload 0
iload 1
if_icmpge else
iload 0
goto done
else:
iload 1
done:
ireturn
`

func TestAnalyzePipeline(t *testing.T) {
	body, err := jasm.Assemble(maxSrc)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	res := Analyze(body, DefaultOptions())
	if res.Err != nil {
		t.Fatalf("Analyze: %v", res.Err)
	}
	if res.Method != "max" {
		t.Errorf("method = %q, want %q", res.Method, "max")
	}
	if res.Flow == nil || res.Flow.Len() == 0 {
		t.Fatal("no flow information produced")
	}

	var exits int
	for _, p := range res.Probes {
		if p.Kind == probe.KindExit {
			exits++
		}
	}
	if exits != 1 {
		t.Errorf("exit probes = %d, want 1", exits)
	}
}

func TestAnalyzeReportsValidationError(t *testing.T) {
	dangling := bytecode.NewLabel("nowhere")
	body := &bytecode.MethodBody{
		Name: "broken",
		Instructions: []bytecode.Instruction{
			bytecode.Jump(bytecode.OpGoto, dangling),
			bytecode.Insn(bytecode.OpReturn),
		},
	}

	res := Analyze(body, DefaultOptions())
	if res.Err == nil {
		t.Fatal("expected validation error for dangling jump target")
	}
	if res.Flow != nil {
		t.Error("flow store produced despite validation failure")
	}
}

func TestAnalyzeAllPreservesOrder(t *testing.T) {
	const n = 20
	bodies := make([]*bytecode.MethodBody, n)
	for i := range bodies {
		body, err := jasm.Assemble(maxSrc)
		if err != nil {
			t.Fatalf("Assemble: %v", err)
		}
		body.Name = fmt.Sprintf("m%d", i)
		bodies[i] = body
	}

	results := AnalyzeAll(bodies, DefaultOptions(), 4)
	if len(results) != n {
		t.Fatalf("results = %d, want %d", len(results), n)
	}
	for i, res := range results {
		if res.Err != nil {
			t.Errorf("result %d: %v", i, res.Err)
		}
		if res.Method != fmt.Sprintf("m%d", i) {
			t.Errorf("result %d is for %q, want m%d", i, res.Method, i)
		}
	}
}

func TestAnalyzeAllMixedOutcomes(t *testing.T) {
	good, err := jasm.Assemble(maxSrc)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	bad := &bytecode.MethodBody{
		Name: "sub",
		Instructions: []bytecode.Instruction{
			bytecode.Insn(bytecode.OpNop),
			{Opcode: bytecode.OpRet, Imm: bytecode.VarImm{Index: 1}},
		},
	}

	results := AnalyzeAll([]*bytecode.MethodBody{good, bad}, DefaultOptions(), 0)
	if results[0].Err != nil {
		t.Errorf("good body failed: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("subroutine body did not fail")
	}
}
